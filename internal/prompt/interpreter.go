// Package prompt reads room counts, style and extras out of a free-text house description.
//
// The reading is keyword and number matching only. Each field is decided by the first rule
// that matches; numbers are never summed across several mentions.
package prompt

import (
	"regexp"
	"strconv"
	"strings"

	"dreamhouse/internal/domain"
)

var (
	bhkPattern      = regexp.MustCompile(`(\d+)\s*bhk`)
	bedroomPattern  = regexp.MustCompile(`(\d+)\s*bed(room)?s?`)
	loosePattern    = regexp.MustCompile(`(\d+)[^\d]*(bed|room|bhk)`)
	bathroomPattern = regexp.MustCompile(`(\d+)\s*bath(room)?s?`)
	kitchenPattern  = regexp.MustCompile(`(\d+)\s*kitchen(s)?`)
)

// Interpret maps text to Attributes. It is pure: the same text always yields the same record.
func Interpret(text string) domain.Attributes {
	t := strings.ToLower(text)

	return domain.Attributes{
		Bedrooms:  bedrooms(t),
		Bathrooms: firstCount(t, bathroomPattern),
		Kitchens:  kitchens(t),
		Halls:     halls(t),
		Style:     style(t),
		Balcony:   strings.Contains(t, "balcony"),
		Garden:    strings.Contains(t, "garden"),
		Parking:   strings.Contains(t, "parking") || strings.Contains(t, "garage"),
	}
}

func bedrooms(t string) int {
	if n, ok := match(t, bhkPattern); ok {
		return n
	}
	if n, ok := match(t, bedroomPattern); ok {
		return n
	}
	if strings.Contains(t, "studio") {
		return 1
	}
	return firstCount(t, loosePattern)
}

func kitchens(t string) int {
	if n, ok := match(t, kitchenPattern); ok {
		return n
	}
	if strings.Contains(t, "kitchen") {
		return 1
	}
	return 0
}

func halls(t string) int {
	if strings.Contains(t, "hall") || strings.Contains(t, "living") {
		return 1
	}
	return 0
}

// style priority: traditional > minimal > modern.
func style(t string) domain.Style {
	switch {
	case strings.Contains(t, "traditional"):
		return domain.StyleTraditional
	case strings.Contains(t, "minimal"):
		// also covers "minimalist"
		return domain.StyleMinimal
	default:
		return domain.StyleModern
	}
}

func firstCount(t string, re *regexp.Regexp) int {
	n, _ := match(t, re)
	return n
}

// match returns the integer captured by the first group of the leftmost match.
func match(t string, re *regexp.Regexp) (int, bool) {
	m := re.FindStringSubmatch(t)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
