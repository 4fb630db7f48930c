// api/models/portfolio.go
package models

// Project is a portfolio project as served to clients. The storage-internal
// row id and the created/updated timestamps are projected out at the store
// layer and never appear here.
type Project struct {
	ID        int      `json:"id"` // public lookup key, caller-supplied at seed time
	Title     string   `json:"title"`
	ShortDesc string   `json:"shortDesc"`
	Desc      string   `json:"description"`
	Details   []string `json:"details"`
	Impact    []string `json:"impact"`
	TechStack []string `json:"techStack"`
	Image     string   `json:"image"`
	Github    string   `json:"github"`
	Order     int      `json:"order"`
	IsActive  bool     `json:"isActive"`
}

// SkillGroup is one stored skills record: a category plus its ordered skill
// names. The API response reshapes a sorted slice of these into a
// category -> skills map.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
	Order    int      `json:"order"`
	IsActive bool     `json:"isActive"`
}

// Experience is a single experience/highlight entry. It has no public id;
// its position in the sorted result is the only ordering signal.
type Experience struct {
	Title    string `json:"title"`
	Desc     string `json:"description"`
	Order    int    `json:"order"`
	IsActive bool   `json:"isActive"`
}

// Contact is the active contact record with isActive already stripped.
type Contact struct {
	Email    string `json:"email"`
	Linkedin string `json:"linkedin"`
	Github   string `json:"github"`
	Resume   string `json:"resume"`
}

type ProjectListResponse struct {
	Projects []Project `json:"projects"`
	Count    int       `json:"count"`
}

type SkillsResponse struct {
	Skills map[string][]string `json:"skills"`
}

type ExperienceListResponse struct {
	Experience []Experience `json:"experience"`
	Count      int          `json:"count"`
}
