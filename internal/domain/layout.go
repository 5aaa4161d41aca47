package domain

// RoomType 房间类型
type RoomType string

const (
	RoomBedroom  RoomType = "Bedroom"
	RoomBathroom RoomType = "Bathroom"
	RoomKitchen  RoomType = "Kitchen"
	RoomHall     RoomType = "Hall"
	RoomBalcony  RoomType = "Balcony"
	RoomGarden   RoomType = "Garden"
	RoomParking  RoomType = "Parking"
)

// Room is one placeholder rectangle of a layout.
// Wire names w/h are what the browser preview reads.
type Room struct {
	Type   RoomType `json:"type" yaml:"type"`
	ID     string   `json:"id" yaml:"id"`
	Width  float64  `json:"w" yaml:"w"`
	Height float64  `json:"h" yaml:"h"`
}

// Area returns width*height.
func (r Room) Area() float64 {
	return r.Width * r.Height
}

// Layout 生成的户型示意
type Layout struct {
	Name   string `json:"name" yaml:"name"`
	Rooms  []Room `json:"rooms" yaml:"rooms"`
	Extras []Room `json:"extras" yaml:"extras"`
	Style  Style  `json:"style" yaml:"style"`
}

// CountByType counts rooms and extras per type.
func (l Layout) CountByType() map[RoomType]int {
	counts := make(map[RoomType]int, 7)
	for _, r := range l.Rooms {
		counts[r.Type]++
	}
	for _, r := range l.Extras {
		counts[r.Type]++
	}
	return counts
}

// TotalArea sums the area of rooms and extras.
func (l Layout) TotalArea() float64 {
	var total float64
	for _, r := range l.Rooms {
		total += r.Area()
	}
	for _, r := range l.Extras {
		total += r.Area()
	}
	return total
}
