package domain

type Course struct {
	ID          int    `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Lessons     int    `db:"lessons"`
	Duration    string `db:"duration"`
	Level       string `db:"level"`
	Image       string `db:"image"`
}

type Article struct {
	ID       int    `db:"id"`
	Title    string `db:"title"`
	Summary  string `db:"summary"`
	Date     string `db:"date"`
	Author   string `db:"author"`
	ReadTime string `db:"read_time"`
}

type Video struct {
	ID       int    `db:"id"`
	Title    string `db:"title"`
	Duration string `db:"duration"`
	Views    int    `db:"views"`
	Image    string `db:"image"`
}

type Exercise struct {
	ID         int    `db:"id"`
	Title      string `db:"title"`
	Level      string `db:"level"`      // beginner | intermediate | advanced
	Category   string `db:"category"`   // frontend | backend | database | algorithms | ml
	Difficulty string `db:"difficulty"` // easy | medium | hard
}
