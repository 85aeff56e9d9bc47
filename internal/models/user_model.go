package models

import "time"

type User struct {
	ID           int64      `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	LinkedinID   string     `db:"linkedin_id" json:"-"`
	IsVerified   bool       `db:"is_verified" json:"is_verified"`
	OTP          string     `db:"otp" json:"-"`
	OTPExpiry    *time.Time `db:"otp_expiry" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
