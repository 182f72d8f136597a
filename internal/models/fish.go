package models

// KoiFish is a species entry, e.g. "Kohaku" or "Showa".
type KoiFish struct {
	KoiFishID   uint   `gorm:"primaryKey"`
	FishType    string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

type KoiFishDTO struct {
	KoiFishID   uint   `json:"koiFishId"`
	FishType    string `json:"fishType"`
	Description string `json:"description"`
}

type KoiFishInput struct {
	FishType    string `json:"fishType" binding:"required"`
	Description string `json:"description"`
}

func (k KoiFish) ToDTO() KoiFishDTO {
	return KoiFishDTO{KoiFishID: k.KoiFishID, FishType: k.FishType, Description: k.Description}
}

func (in KoiFishInput) ApplyTo(k *KoiFish) {
	k.FishType = in.FishType
	k.Description = in.Description
}

// FishProfile is one customer's fish. Image holds the public URL returned
// by the client-side upload.
type FishProfile struct {
	FishProfileID uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:100;not null;index"`
	Weight        float64 `gorm:"not null;default:0"`
	Gender        string  `gorm:"size:20"`
	Notes         string  `gorm:"type:text"`
	Image         string  `gorm:"size:512"`
	KoiFishID     uint    `gorm:"not null"`
	CustomerID    uint    `gorm:"not null;index"`

	KoiFish  *KoiFish  `gorm:"constraint:OnDelete:RESTRICT"`
	Customer *Customer `gorm:"constraint:OnDelete:CASCADE"`
}

type FishProfileDTO struct {
	FishProfileID uint    `json:"fishProfileId"`
	Name          string  `json:"name"`
	Weight        float64 `json:"weight"`
	Gender        string  `json:"gender"`
	Notes         string  `json:"notes"`
	Image         string  `json:"image"`
	KoiFishID     uint    `json:"koiFishId"`
	CustomerID    uint    `json:"customerId"`
	FishType      string  `json:"fishType,omitempty"`
}

type FishProfileInput struct {
	Name       string  `json:"name" binding:"required"`
	Weight     float64 `json:"weight" binding:"gte=0"`
	Gender     string  `json:"gender"`
	Notes      string  `json:"notes"`
	Image      string  `json:"image" binding:"omitempty,url"`
	KoiFishID  uint    `json:"koiFishId" binding:"required"`
	CustomerID uint    `json:"customerId" binding:"required"`
}

func (f FishProfile) ToDTO() FishProfileDTO {
	dto := FishProfileDTO{
		FishProfileID: f.FishProfileID,
		Name:          f.Name,
		Weight:        f.Weight,
		Gender:        f.Gender,
		Notes:         f.Notes,
		Image:         f.Image,
		KoiFishID:     f.KoiFishID,
		CustomerID:    f.CustomerID,
	}
	if f.KoiFish != nil {
		dto.FishType = f.KoiFish.FishType
	}
	return dto
}

func (in FishProfileInput) ApplyTo(f *FishProfile) {
	f.Name = in.Name
	f.Weight = in.Weight
	f.Gender = in.Gender
	f.Notes = in.Notes
	f.Image = in.Image
	f.KoiFishID = in.KoiFishID
	f.CustomerID = in.CustomerID
	// the preloaded species may be stale after KoiFishID changes
	f.KoiFish = nil
}
