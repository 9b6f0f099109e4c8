// Package i18n provides localized display labels for category keys.
// Labels are presentation only; aggregation always runs on the canonical
// domain.Category keys.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/balynce/balynce/internal/domain"
)

// Uncategorized is the display fallback for records without a category key.
const Uncategorized = "Uncategorized"

var supported = []language.Tag{
	language.English, // default
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

var english = map[domain.Category]string{
	domain.CategorySalary:            "Salary & Wages",
	domain.CategoryTransferIn:        "Transfer In",
	domain.CategoryOtherIncome:       "Other Income",
	domain.CategoryFastFood:          "Fast Food",
	domain.CategoryRestaurants:       "Restaurants",
	domain.CategoryCoffee:            "Coffee & Cafes",
	domain.CategoryFoodDelivery:      "Food Delivery",
	domain.CategoryGas:               "Gas & Fuel",
	domain.CategoryAutoPayment:       "Auto Payment",
	domain.CategoryRideshare:         "Rideshare",
	domain.CategoryMovies:            "Movies & Theater",
	domain.CategorySubscriptions:     "Subscriptions",
	domain.CategoryOnlineShopping:    "Online Shopping",
	domain.CategoryGeneralShopping:   "General Shopping",
	domain.CategoryClothing:          "Clothing & Fashion",
	domain.CategoryTechnology:        "Technology",
	domain.CategoryPersonalTransfers: "Personal Transfers",
	domain.CategoryGeneralExpenses:   "General Expenses",
}

var spanish = map[domain.Category]string{
	domain.CategorySalary:            "Salario y Sueldos",
	domain.CategoryTransferIn:        "Transferencia Entrante",
	domain.CategoryOtherIncome:       "Otros Ingresos",
	domain.CategoryFastFood:          "Comida Rápida",
	domain.CategoryRestaurants:       "Restaurantes",
	domain.CategoryCoffee:            "Café y Cafeterías",
	domain.CategoryFoodDelivery:      "Entrega de Comida",
	domain.CategoryGas:               "Gasolina y Combustible",
	domain.CategoryAutoPayment:       "Pago de Auto",
	domain.CategoryRideshare:         "Viajes Compartidos",
	domain.CategoryMovies:            "Películas y Teatro",
	domain.CategorySubscriptions:     "Suscripciones",
	domain.CategoryOnlineShopping:    "Compras en Línea",
	domain.CategoryGeneralShopping:   "Compras Generales",
	domain.CategoryClothing:          "Ropa y Moda",
	domain.CategoryTechnology:        "Tecnología",
	domain.CategoryPersonalTransfers: "Transferencias Personales",
	domain.CategoryGeneralExpenses:   "Gastos Generales",
}

// MatchLanguage parses a BCP 47 tag like "en", "es" or "es-MX". Unparseable
// input falls back to English.
func MatchLanguage(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}

// Label returns the display string for a category in the best supported
// match for the requested tag. Unknown keys map to Uncategorized.
func Label(tag language.Tag, c domain.Category) string {
	table := english
	if _, idx, _ := matcher.Match(tag); supported[idx] == language.Spanish {
		table = spanish
	}
	if label, ok := table[c]; ok {
		return label
	}
	return Uncategorized
}

// Labeler returns a lookup function bound to one language, for callers that
// resolve many labels (export, insight messages).
func Labeler(tag language.Tag) func(domain.Category) string {
	return func(c domain.Category) string {
		return Label(tag, c)
	}
}
