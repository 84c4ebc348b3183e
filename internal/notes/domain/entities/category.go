package entities

import "strings"

// Category - категория заметки. Пустое значение означает отсутствие категории.
type Category string

// Допустимые категории.
const (
	CategoryNone     Category = ""
	CategoryWork     Category = "WORK"
	CategoryPersonal Category = "PERSONAL"
	CategoryOthers   Category = "OTHERS"
)

// Categories возвращает все допустимые непустые категории.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryOthers}
}

// NormalizeCategory приводит ввод клиента к каноническому виду.
func NormalizeCategory(raw string) Category {
	return Category(strings.ToUpper(raw))
}

// Valid сообщает, входит ли категория в допустимый набор.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryOthers:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}
