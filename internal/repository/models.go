package repository

import "time"

type User struct {
	ID        string  `gorm:"primaryKey;autoIncrement:false"`
	SubjectID string  `gorm:"type:varchar(255);uniqueIndex;not null"` // identity-provider subject
	Username  *string `gorm:"type:varchar(255)"`
	PublicKey *string `gorm:"size:44;index"` // base58 Solana address
	CreatedAt time.Time
}

type Contact struct {
	ID        string `gorm:"primaryKey;autoIncrement:false"`
	AddedByID string `gorm:"not null;uniqueIndex:idx_contacts_owner_key"`
	Username  string `gorm:"type:varchar(255);not null"`
	PublicKey string `gorm:"size:44;not null;uniqueIndex:idx_contacts_owner_key"`
	CreatedAt time.Time
}

type PendingPayment struct {
	ID                 string `gorm:"primaryKey;autoIncrement:false"`
	SenderID           string `gorm:"not null;index"`
	SenderPublicKey    string `gorm:"size:44;not null;index"` // denormalized at creation time
	RecipientPublicKey string `gorm:"size:44;not null;index"`
	Amount             string `gorm:"size:100;not null"` // decimal string, never a float
	Description        string `gorm:"type:text"`
	IsCompleted        bool   `gorm:"not null;default:false;column:is_completed"`
	CreatedAt          time.Time
	Sender             User `gorm:"foreignKey:SenderID"`
}

type Transaction struct {
	ID          string `gorm:"primaryKey;autoIncrement:false"`
	Signature   string `gorm:"size:88;uniqueIndex;not null"` // base58 transaction signature
	From        string `gorm:"size:44;not null"`
	To          string `gorm:"size:44;not null"`
	Amount      string `gorm:"size:100;not null"`
	PriorityFee string `gorm:"size:100;not null;default:'disabled'"`
	UserID      string `gorm:"not null;index"`
	CreatedAt   time.Time
}
