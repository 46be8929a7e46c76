package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// Канонические значения темы портфолио.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Skill описывает навык с уровнем прогресса 0–100.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Project описывает работу в портфолио: репозиторий, демо, изображение.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	RepoLink     string   `json:"repoLink"`
	LiveDemo     string   `json:"liveDemo"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
}

// Experience описывает запись таймлайна работы или образования.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Contact хранит контактные данные владельца портфолио.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// SkillList, ProjectList и ExperienceList хранятся как jsonb колонки.
// Элементы адресуются позиционным индексом: стабильных id у них нет,
// индекс валиден только в пределах текущей длины последовательности.
type SkillList []Skill

func (l SkillList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *SkillList) Scan(src interface{}) error  { return jsonbScan(src, l) }

type ProjectList []Project

func (l ProjectList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *ProjectList) Scan(src interface{}) error  { return jsonbScan(src, l) }

type ExperienceList []Experience

func (l ExperienceList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *ExperienceList) Scan(src interface{}) error  { return jsonbScan(src, l) }

func (c Contact) Value() (driver.Value, error) { return jsonbValue(c) }
func (c *Contact) Scan(src interface{}) error  { return jsonbScan(src, c) }

// Portfolio — агрегат: единый документ со встроенными подколлекциями.
// Каждая мутация сохраняет документ целиком.
type Portfolio struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	UserID         string         `db:"user_id" json:"userId"`
	Theme          string         `db:"theme" json:"theme"`
	About          string         `db:"about" json:"about"`
	Skills         SkillList      `db:"skills" json:"skills"`
	Projects       ProjectList    `db:"projects" json:"projects"`
	Experience     ExperienceList `db:"experience" json:"experience"`
	Contact        Contact        `db:"contact" json:"contact"`
	FriendsReviews []uuid.UUID    `db:"-" json:"friendsReviews"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updatedAt"`
}

// NewDefaultPortfolio собирает свежий документ с дефолтами для userID.
// Каждый вызов возвращает новый экземпляр: общий изменяемый дефолтный
// объект привёл бы к утечке состояния между пользователями.
func NewDefaultPortfolio(userID string) *Portfolio {
	return &Portfolio{
		UserID:         userID,
		Theme:          ThemeLight,
		About:          "",
		Skills:         SkillList{},
		Projects:       ProjectList{},
		Experience:     ExperienceList{},
		Contact:        Contact{},
		FriendsReviews: []uuid.UUID{},
	}
}
