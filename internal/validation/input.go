package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MinNameLength            = 2
	MaxNameLength            = 100
	MinPasswordLength        = 6
	MaxPasswordLength        = 72 // предел bcrypt
	MaxAboutLength           = 5000
	MaxSkillNameLength       = 50
	MinSkillLevel            = 0
	MaxSkillLevel            = 100
	MinProjectTitleLength    = 1
	MaxProjectTitleLength    = 200
	MaxProjectDescription    = 2000
	MaxCommentLength         = 2000
	MinRating                = 1
	MaxRating                = 5
	MaxContactMessageLength  = 5000
	MaxExternalLinkLength    = 500
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	// Базовая проверка формата
	if !strings.Contains(email, "@") {
		return fmt.Errorf("email должен содержать символ @")
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}

	localPart := parts[0]
	domainPart := parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}

	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("доменная часть email должна быть от 1 до 255 символов")
	}

	if !strings.Contains(domainPart, ".") {
		return fmt.Errorf("доменная часть email должна содержать точку")
	}

	// Проверка на валидные символы в локальной части
	emailRegex := regexp.MustCompile(`^[a-z0-9._+-]+$`)
	if !emailRegex.MatchString(localPart) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}

	// Проверка на валидные символы в доменной части
	domainRegex := regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	if !domainRegex.MatchString(domainPart) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}

	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidatePassword проверяет пароль при регистрации.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("пароль обязателен")
	}
	return ValidateLength("пароль", password, MinPasswordLength, MaxPasswordLength)
}

// ValidateSkillLevel проверяет уровень владения навыком.
func ValidateSkillLevel(level int) error {
	if level < MinSkillLevel || level > MaxSkillLevel {
		return fmt.Errorf("уровень навыка должен быть от %d до %d", MinSkillLevel, MaxSkillLevel)
	}
	return nil
}

// ValidateRating проверяет рейтинг отзыва.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("рейтинг должен быть от %d до %d", MinRating, MaxRating)
	}
	return nil
}

// ValidateExternalLink проверяет внешнюю ссылку.
func ValidateExternalLink(link string) error {
	if link == "" {
		return nil
	}

	link = strings.TrimSpace(link)

	if err := ValidateLength("внешняя ссылка", link, 0, MaxExternalLinkLength); err != nil {
		return err
	}

	// Проверка формата URL
	parsedURL, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("некорректный формат URL")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("ссылка должна начинаться с http:// или https://")
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("ссылка должна содержать доменное имя")
	}

	return nil
}

// ValidateContactMessage проверяет сообщение из формы обратной связи.
func ValidateContactMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("сообщение не может быть пустым")
	}

	if err := ValidateLength("сообщение", message, 1, MaxContactMessageLength); err != nil {
		return err
	}

	return nil
}
