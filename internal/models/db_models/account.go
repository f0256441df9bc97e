package db_models

// Account is the only persisted entity; trips and itineraries live in the
// session store. The optional name fields mirror whatever the identity
// provider supplied, any of them may be empty.
type Account struct {
	BaseModel
	Email        string `gorm:"unique"`
	PasswordHash string
	DisplayName  string
	GivenName    string
	FamilyName   string
	FullName     string
	AvatarURL    string
}
