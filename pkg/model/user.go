package model

// User holds one login identity: a phone number and the MD5 hex digest of the
// current one-time password.
type User struct {
	IDUser int    `gorm:"column:id_user;primaryKey"`
	Phone  string `gorm:"column:phone;uniqueIndex"`
	OTP    string `gorm:"column:otp"`
}

func (User) TableName() string {
	return "tb_user"
}
