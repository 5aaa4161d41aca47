// Package layout turns prompt attributes into a schematic list of rooms and extras.
package layout

import (
	"fmt"

	"dreamhouse/internal/domain"
)

// roomSpec 每种房间的固定尺寸与编号前缀
type roomSpec struct {
	roomType domain.RoomType
	prefix   string
	width    float64
	height   float64
}

var (
	bedroom  = roomSpec{domain.RoomBedroom, "Bed", 4, 3}
	bathroom = roomSpec{domain.RoomBathroom, "Bath", 2, 2}
	kitchen  = roomSpec{domain.RoomKitchen, "Kit", 3, 3}
	hall     = roomSpec{domain.RoomHall, "Hall", 4, 4}
	balcony  = roomSpec{domain.RoomBalcony, "Balcony", 2, 1}
	garden   = roomSpec{domain.RoomGarden, "Garden", 4, 3}
	parking  = roomSpec{domain.RoomParking, "Parking", 4, 3}
)

// Synthesize builds the layout for attrs. Bedroom, Kitchen and Hall always get at least one
// room; Bathroom count is taken as is. Each flagged extra is emitted exactly once.
func Synthesize(attrs domain.Attributes, name string) domain.Layout {
	rooms := make([]domain.Room, 0, RoomCount(attrs))
	rooms = appendRooms(rooms, bedroom, atLeastOne(attrs.Bedrooms))
	rooms = appendRooms(rooms, bathroom, attrs.Bathrooms)
	rooms = appendRooms(rooms, kitchen, atLeastOne(attrs.Kitchens))
	rooms = appendRooms(rooms, hall, atLeastOne(attrs.Halls))

	extras := []domain.Room{}
	if attrs.Balcony {
		extras = appendRooms(extras, balcony, 1)
	}
	if attrs.Garden {
		extras = appendRooms(extras, garden, 1)
	}
	if attrs.Parking {
		extras = appendRooms(extras, parking, 1)
	}

	return domain.Layout{
		Name:   name,
		Rooms:  rooms,
		Extras: extras,
		Style:  attrs.Style,
	}
}

// RoomCount is len(Synthesize(attrs, _).Rooms).
func RoomCount(attrs domain.Attributes) int {
	return atLeastOne(attrs.Bedrooms) + max(attrs.Bathrooms, 0) +
		atLeastOne(attrs.Kitchens) + atLeastOne(attrs.Halls)
}

func appendRooms(rooms []domain.Room, s roomSpec, n int) []domain.Room {
	for i := 1; i <= n; i++ {
		rooms = append(rooms, domain.Room{
			Type:   s.roomType,
			ID:     fmt.Sprintf("%s%d", s.prefix, i),
			Width:  s.width,
			Height: s.height,
		})
	}
	return rooms
}

func atLeastOne(n int) int {
	return max(n, 1)
}
