package domain

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// Больше пяти особенностей в пост не попадает — остальные молча отбрасываются.
	maxRenderedFeatures = 5

	defaultPropertyType = "Property"
)

// FormatListingMessage собирает текст поста из объявления.
// Чистая функция: без I/O, детерминированная, всегда успешна для объявления,
// прошедшего валидацию (city обязан быть заполнен — это гарантирует валидатор).
func FormatListingMessage(l Listing) string {
	propertyType := l.Type
	if propertyType == "" {
		propertyType = defaultPropertyType
	}

	var b strings.Builder

	fmt.Fprintf(&b, "🏠 NEW LISTING: %s\n", l.Address)
	fmt.Fprintf(&b, "💰 Price: %s\n", normalizePrice(l.Price))

	fmt.Fprintf(&b, "🛏 %d bed | 🛁 %d bath", l.Bedrooms, l.Bathrooms)
	if l.Sqft > 0 {
		fmt.Fprintf(&b, " | 📐 %d sqft", l.Sqft)
	}
	b.WriteString("\n")

	b.WriteString("📍 " + l.City)
	if l.Neighborhood != "" {
		b.WriteString(" (" + l.Neighborhood + ")")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "🏷 Type: %s\n", propertyType)

	if len(l.Features) > 0 {
		features := l.Features
		if len(features) > maxRenderedFeatures {
			features = features[:maxRenderedFeatures]
		}
		b.WriteString("✨ Features:\n")
		for _, feature := range features {
			b.WriteString("• " + feature + "\n")
		}
	}

	fmt.Fprintf(&b, "\n#%s #%s #RealEstate", stripWhitespace(l.City), stripWhitespace(propertyType))

	return b.String()
}

// normalizePrice добавляет символ валюты, если цена пришла "голым" числом.
// Уже префиксованные цены ("$450,000", "€300000") не трогаем.
func normalizePrice(price string) string {
	price = strings.TrimSpace(price)
	if price == "" {
		return price
	}
	if unicode.IsDigit([]rune(price)[0]) {
		return "$" + price
	}
	return price
}

// stripWhitespace убирает внутренние пробелы для хештега:
// "New York" -> "NewYork". Регистр не меняем.
func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
