package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayhub/backend/internal/domain/rental"
)

// ListingModel is the persistence model for the Listing domain entity.
type ListingModel struct {
	BaseModel
	Title       string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Latitude    *float64
	Longitude   *float64
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (ListingModel) TableName() string {
	return "listings"
}

// ToDomain converts the persistence model to a domain Listing entity.
// Note: AmenityIDs must be loaded separately by the repository.
func (m *ListingModel) ToDomain() *rental.Listing {
	return &rental.Listing{
		BaseEntity:  m.BaseModel.ToDomain(),
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		OwnerID:     m.OwnerID,
		AmenityIDs:  make([]uuid.UUID, 0),
	}
}

// FromDomain populates the persistence model from a domain Listing entity.
func (m *ListingModel) FromDomain(l *rental.Listing) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.Title = l.Title
	m.Description = l.Description
	m.Price = l.Price
	m.Latitude = l.Latitude
	m.Longitude = l.Longitude
	m.OwnerID = l.OwnerID
}

// ListingModelFromDomain creates a new persistence model from a domain Listing entity.
func ListingModelFromDomain(l *rental.Listing) *ListingModel {
	m := &ListingModel{}
	m.FromDomain(l)
	return m
}

// ListingAmenityModel is the persistence model for the listing-amenity
// many-to-many relationship. Position preserves association order.
type ListingAmenityModel struct {
	ListingID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AmenityID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ListingAmenityModel) TableName() string {
	return "listing_amenities"
}

// AmenityModel is the persistence model for the Amenity domain entity.
type AmenityModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (AmenityModel) TableName() string {
	return "amenities"
}

// ToDomain converts the persistence model to a domain Amenity entity.
func (m *AmenityModel) ToDomain() *rental.Amenity {
	return &rental.Amenity{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain Amenity entity.
func (m *AmenityModel) FromDomain(a *rental.Amenity) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Name = a.Name
	m.Description = a.Description
}

// AmenityModelFromDomain creates a new persistence model from a domain Amenity entity.
func AmenityModelFromDomain(a *rental.Amenity) *AmenityModel {
	m := &AmenityModel{}
	m.FromDomain(a)
	return m
}

// ReviewModel is the persistence model for the Review domain entity.
type ReviewModel struct {
	BaseModel
	Text    string    `gorm:"type:text;not null"`
	Rating  int       `gorm:"not null"`
	PlaceID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_place"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_place"`
}

// TableName returns the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts the persistence model to a domain Review entity.
func (m *ReviewModel) ToDomain() *rental.Review {
	return &rental.Review{
		BaseEntity: m.BaseModel.ToDomain(),
		Text:       m.Text,
		Rating:     m.Rating,
		PlaceID:    m.PlaceID,
		UserID:     m.UserID,
	}
}

// FromDomain populates the persistence model from a domain Review entity.
func (m *ReviewModel) FromDomain(r *rental.Review) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.Text = r.Text
	m.Rating = r.Rating
	m.PlaceID = r.PlaceID
	m.UserID = r.UserID
}

// ReviewModelFromDomain creates a new persistence model from a domain Review entity.
func ReviewModelFromDomain(r *rental.Review) *ReviewModel {
	m := &ReviewModel{}
	m.FromDomain(r)
	return m
}
