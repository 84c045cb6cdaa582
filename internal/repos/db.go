package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed catalog content if the DB is empty
	if err := seedContent(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'student' CHECK (role IN ('student','admin')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

-- Catalog content
CREATE TABLE IF NOT EXISTS courses(
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  lessons INTEGER NOT NULL,
  duration TEXT NOT NULL,
  level TEXT NOT NULL,
  image TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS articles(
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  summary TEXT NOT NULL,
  date TEXT NOT NULL,
  author TEXT NOT NULL,
  read_time TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS videos(
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  duration TEXT NOT NULL,
  views INTEGER NOT NULL DEFAULT 0,
  image TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS exercises(
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  level TEXT NOT NULL CHECK (level IN ('beginner','intermediate','advanced')),
  category TEXT NOT NULL,
  difficulty TEXT NOT NULL CHECK (difficulty IN ('easy','medium','hard'))
);
CREATE INDEX IF NOT EXISTS idx_exercises_level    ON exercises(level);
CREATE INDEX IF NOT EXISTS idx_exercises_category ON exercises(category);
`
	_, err := db.Exec(schema)
	return err
}

func seedContent(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM courses`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting catalog courses/articles/videos/exercises")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO courses(id,title,description,lessons,duration,level,image) VALUES
	  (1,'Web Frontend Fundamentals','HTML, CSS and JavaScript basics for building responsive pages.',12,'8h','beginner','/static/img/course-web.png'),
	  (2,'Practical React','Component-driven development and state management with React.',15,'10h','intermediate','/static/img/course-react.png'),
	  (3,'Node.js Backend Development','Build fast backend services and APIs with Node.js.',14,'12h','intermediate','/static/img/course-node.png'),
	  (4,'Database Design and Tuning','Design principles and tuning for relational and NoSQL stores.',10,'8h','intermediate','/static/img/course-db.png')`)

	tx.MustExec(`INSERT INTO articles(id,title,summary,date,author,read_time) VALUES
	  (1,'Async Programming in JavaScript','Promises, async/await and common asynchronous patterns.','2023-05-12','Li Ming','8 min'),
	  (2,'React Performance Guide','Make React apps faster and the experience smoother.','2023-06-05','Wang Fang','12 min'),
	  (3,'CSS Layout: Flexbox vs Grid','When to reach for each of the two layout systems.','2023-06-18','Zhang Wei','10 min'),
	  (4,'Web Security Best Practices','Protect your applications from common threats.','2023-07-02','Liu Qiang','15 min')`)

	tx.MustExec(`INSERT INTO videos(id,title,duration,views,image) VALUES
	  (1,'Modern JavaScript in 90 Minutes','1:28:14',20453,'/static/img/video-js.png'),
	  (2,'Building a REST API Step by Step','54:02',11876,'/static/img/video-api.png'),
	  (3,'Git for Team Workflows','41:37',8230,'/static/img/video-git.png')`)

	tx.MustExec(`INSERT INTO exercises(id,title,level,category,difficulty) VALUES
	  (1,'HTML Document Structure','beginner','frontend','easy'),
	  (2,'CSS Layout and Responsive Design','beginner','frontend','medium'),
	  (3,'JavaScript Variables and Functions','beginner','frontend','easy'),
	  (4,'React Component State','intermediate','frontend','medium'),
	  (5,'Node.js API Development','intermediate','backend','medium'),
	  (6,'SQL Query Optimization','intermediate','database','hard'),
	  (7,'Sorting Algorithms','intermediate','algorithms','medium'),
	  (8,'Deep Learning Basics','advanced','ml','hard')`)

	return tx.Commit()
}
