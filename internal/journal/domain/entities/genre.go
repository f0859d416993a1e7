package entities

import "strings"

// Genre - жанр книги.
type Genre string

// Жанры книг.
const (
	GenreFiction    Genre = "FICTION"
	GenreNonFiction Genre = "NON_FICTION"
	GenreScience    Genre = "SCIENCE"
	GenreHistory    Genre = "HISTORY"
	GenreBiography  Genre = "BIOGRAPHY"
	GenreTechnology Genre = "TECHNOLOGY"
	GenreOther      Genre = "OTHER"
)

// ErrInvalidGenre возвращается при разборе неизвестного жанра.
var ErrInvalidGenre = NewArgumentError("invalid genre")

// Genres перечисляет все жанры.
func Genres() []Genre {
	return []Genre{GenreFiction, GenreNonFiction, GenreScience, GenreHistory, GenreBiography, GenreTechnology, GenreOther}
}

// ParseGenre разбирает жанр без учета регистра.
func ParseGenre(s string) (Genre, error) {
	g := Genre(strings.ToUpper(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", ErrInvalidGenre
	}
	return g, nil
}

// Valid сообщает, является ли значение известным жанром.
func (g Genre) Valid() bool {
	return g.Description() != ""
}

// Description возвращает человекочитаемое название жанра.
func (g Genre) Description() string {
	switch g {
	case GenreFiction:
		return "소설"
	case GenreNonFiction:
		return "논픽션"
	case GenreScience:
		return "과학"
	case GenreHistory:
		return "역사"
	case GenreBiography:
		return "전기"
	case GenreTechnology:
		return "기술"
	case GenreOther:
		return "기타"
	}
	return ""
}

// String возвращает имя жанра.
func (g Genre) String() string {
	return string(g)
}
