package models

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomMaintenance RoomStatus = "Maintenance"
	RoomCleaning    RoomStatus = "Cleaning"
)

type RoomType string

const (
	RoomTypePremium RoomType = "Premium"
	RoomTypeDeluxe  RoomType = "Deluxe"
)

type Room struct {
	Number uint       `gorm:"primaryKey" json:"room_number"`
	Type   RoomType   `gorm:"type:varchar(20);not null" json:"type"`
	Rate   float64    `gorm:"not null" json:"rate"`
	Status RoomStatus `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`

	Guest *Guest `gorm:"foreignKey:RoomNumber;references:Number" json:"guest,omitempty"`
}
