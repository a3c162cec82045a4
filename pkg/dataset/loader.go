// Package dataset loads the article catalog and the user-article
// interaction log from CSV files.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/dtnitsch/article-analytics/models"
)

// indexColumnName is the header pandas writes for an unnamed index column.
// Both input files carry one as an export artifact and it must be dropped.
const indexColumnName = "Unnamed: 0"

// Load reads both input files and returns the catalog, the interaction log
// with raw emails replaced by dense user ids, and the encoder that did the
// replacement.
func Load(articlesPath, interactionsPath string) (*models.ArticleTable, *models.InteractionTable, *UserEncoder, error) {
	articles, err := LoadArticles(articlesPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load articles: %w", err)
	}

	interactions, encoder, err := LoadInteractions(interactionsPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load interactions: %w", err)
	}

	return articles, interactions, encoder, nil
}

// LoadArticles parses the article catalog. Every column other than
// article_id is carried as opaque metadata.
func LoadArticles(path string) (*models.ArticleTable, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	header, rows, err = dropIndexColumn(path, header, rows)
	if err != nil {
		return nil, err
	}

	idCol := columnIndex(header, "article_id")
	if idCol < 0 {
		return nil, fmt.Errorf("%s is missing the article_id column", path)
	}

	columns := make([]string, 0, len(header)-1)
	for i, name := range header {
		if i != idCol {
			columns = append(columns, name)
		}
	}

	table := &models.ArticleTable{Columns: columns}
	for i, row := range rows {
		id, err := parseArticleID(row[idCol])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}

		meta := make(map[string]string, len(columns))
		for j, name := range header {
			if j != idCol {
				meta[name] = row[j]
			}
		}
		table.Rows = append(table.Rows, models.Article{ID: id, Meta: meta})
	}

	return table, nil
}

// LoadInteractions parses the interaction log, coerces article_id to int
// and replaces the email column with encoder-assigned user ids.
func LoadInteractions(path string) (*models.InteractionTable, *UserEncoder, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, nil, err
	}

	header, rows, err = dropIndexColumn(path, header, rows)
	if err != nil {
		return nil, nil, err
	}

	idCol := columnIndex(header, "article_id")
	if idCol < 0 {
		return nil, nil, fmt.Errorf("%s is missing the article_id column", path)
	}
	emailCol := columnIndex(header, "email")
	if emailCol < 0 {
		return nil, nil, fmt.Errorf("%s is missing the email column", path)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s has no interaction rows", path)
	}

	encoder := NewUserEncoder()
	table := &models.InteractionTable{Rows: make([]models.Interaction, 0, len(rows))}
	for i, row := range rows {
		id, err := parseArticleID(row[idCol])
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}

		table.Rows = append(table.Rows, models.Interaction{
			UserID:    encoder.Encode(row[emailCol]),
			ArticleID: id,
		})
	}

	return table, encoder, nil
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", path)
	}

	return records[0], records[1:], nil
}

// dropIndexColumn removes the export index artifact. The first column must
// carry an empty header or the pandas placeholder name.
func dropIndexColumn(path string, header []string, rows [][]string) ([]string, [][]string, error) {
	if len(header) == 0 || (header[0] != "" && header[0] != indexColumnName) {
		return nil, nil, fmt.Errorf("%s is missing the unnamed index column", path)
	}

	trimmed := make([][]string, len(rows))
	for i, row := range rows {
		trimmed[i] = row[1:]
	}

	return header[1:], trimmed, nil
}

func columnIndex(header []string, name string) int {
	for i, col := range header {
		if col == name {
			return i
		}
	}
	return -1
}

// parseArticleID coerces an id cell to int. The source data stores ids as
// floats ("1430.0"), so a float parse with truncation is the fallback.
func parseArticleID(value string) (int, error) {
	if id, err := strconv.Atoi(value); err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid article_id %q: %w", value, err)
	}

	return int(f), nil
}
