package db_models

// User is created lazily on first authenticated request. AlienID is the
// 'sub' claim issued by the Alien SSO and never changes for a given user.
type User struct {
	BaseModel
	AlienID string `gorm:"uniqueIndex;not null"`
}
