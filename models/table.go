package models

// Article is one catalog row. Meta holds every column except article_id,
// passed through untouched.
type Article struct {
	ID   int
	Meta map[string]string
}

// ArticleTable keeps the catalog's metadata column order alongside its rows.
type ArticleTable struct {
	Columns []string
	Rows    []Article
}

// Interaction is one user-article interaction after the loader has
// replaced the raw email with a dense user id.
type Interaction struct {
	UserID    int
	ArticleID int
}

// InteractionTable holds the interaction log, one row per observed event.
type InteractionTable struct {
	Rows []Interaction
}
