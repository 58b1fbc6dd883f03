package request

import (
	"stayhub/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type CreatePropertyRequest struct {
	Name          string   `json:"name" binding:"required,notblank,max=150"`
	Description   string   `json:"description" binding:"required,notblank"`
	Location      string   `json:"location" binding:"required,notblank,max=255"`
	PricePerNight string   `json:"price_per_night" binding:"required,money"`
	Bedrooms      *int     `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms     *int     `json:"bathrooms" binding:"omitempty,min=0"`
	MaxGuests     *int     `json:"max_guests" binding:"omitempty,min=1"`
	Amenities     []string `json:"amenities" binding:"omitempty,max=50,dive,notblank,max=64"`
}

func (r *CreatePropertyRequest) ToCommand() (commands.CreatePropertyRequest, error) {
	var cmd commands.CreatePropertyRequest
	err := copier.Copy(&cmd, r)
	return cmd, err
}

type UpdatePropertyRequest struct {
	Name          *string   `json:"name" binding:"omitempty,notblank,max=150"`
	Description   *string   `json:"description" binding:"omitempty,notblank"`
	Location      *string   `json:"location" binding:"omitempty,notblank,max=255"`
	PricePerNight *string   `json:"price_per_night" binding:"omitempty,money"`
	Bedrooms      *int      `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms     *int      `json:"bathrooms" binding:"omitempty,min=0"`
	MaxGuests     *int      `json:"max_guests" binding:"omitempty,min=1"`
	Amenities     *[]string `json:"amenities" binding:"omitempty,max=50,dive,notblank,max=64"`
}

func (r *UpdatePropertyRequest) ToCommand() (commands.UpdatePropertyRequest, error) {
	var cmd commands.UpdatePropertyRequest
	err := copier.Copy(&cmd, r)
	return cmd, err
}

// PropertyListQuery is bound from the query string of GET /properties.
type PropertyListQuery struct {
	Location  *string `form:"location"`
	Bedrooms  *int    `form:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms *int    `form:"bathrooms" binding:"omitempty,min=0"`
	MinGuests *int    `form:"min_guests" binding:"omitempty,min=1"`
	Search    *string `form:"search"`
	Sort      string  `form:"sort" binding:"omitempty,oneof=newest price_asc price_desc"`
	Page      int     `form:"page" binding:"omitempty,min=1"`
	Limit     int     `form:"limit" binding:"omitempty,min=1"`
}
