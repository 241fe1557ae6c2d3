package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	boarddomain "fizzy-backend/internal/board/domain"
	boardrepo "fizzy-backend/internal/board/repository"
	"fizzy-backend/internal/board/usecase"
)

// clickupColumnNames maps a ClickUp status to the column the card lands in.
// Statuses without an entry (and "done"/"complete", which close the card
// instead) leave the card awaiting triage.
var clickupColumnNames = map[string]string{
	"to do":       "Todo",
	"backlog":     "Todo",
	"in progress": "In Progress",
	"review":      "Verifying",
	"blocked":     "Blocked",
}

// Result reports one import run. Rows fail individually; a bad row never
// aborts the run.
type Result struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   int      `json:"errors"`
	Messages []string `json:"messages,omitempty"`
}

// ClickupImporter turns a ClickUp CSV export into boards, cards and tags.
// Boards are created per folder name; re-runs skip tasks already imported.
type ClickupImporter struct {
	repo      Repository
	boardRepo boardrepo.BoardRepository
	boards    usecase.BoardUsecase
	lifecycle usecase.LifecycleUsecase
	tags      usecase.TagUsecase
}

// NewClickupImporter creates a new ClickupImporter
func NewClickupImporter(
	repo Repository,
	boardRepo boardrepo.BoardRepository,
	boards usecase.BoardUsecase,
	lifecycle usecase.LifecycleUsecase,
	tags usecase.TagUsecase,
) *ClickupImporter {
	return &ClickupImporter{
		repo:      repo,
		boardRepo: boardRepo,
		boards:    boards,
		lifecycle: lifecycle,
		tags:      tags,
	}
}

// Import reads a ClickUp CSV export and creates cards for the account, acting
// as actorID. Rows without a task ID or folder are skipped; failing rows are
// counted and logged but do not stop the run.
func (imp *ClickupImporter) Import(accountID, actorID string, r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := headerIndex(header)

	result := &Result{}
	boardCache := map[string]*boarddomain.Board{}
	columnCache := map[string]*boarddomain.Column{}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors++
			result.Messages = append(result.Messages, err.Error())
			continue
		}

		imported, err := imp.importRow(accountID, actorID, columns, row, boardCache, columnCache)
		if err != nil {
			log.Printf("[Import] Error importing task %s: %v", field(columns, row, "task id"), err)
			result.Errors++
			result.Messages = append(result.Messages, err.Error())
			continue
		}
		if imported {
			result.Imported++
		} else {
			result.Skipped++
		}
	}

	log.Printf("[Import] ClickUp CSV import completed: imported=%d skipped=%d errors=%d",
		result.Imported, result.Skipped, result.Errors)
	return result, nil
}

func (imp *ClickupImporter) importRow(
	accountID, actorID string,
	columns map[string]int,
	row []string,
	boardCache map[string]*boarddomain.Board,
	columnCache map[string]*boarddomain.Column,
) (bool, error) {
	taskID := strings.TrimSpace(field(columns, row, "task id"))
	if taskID == "" {
		return false, nil
	}

	existing, err := imp.repo.FindByExternalID(accountID, taskID)
	if err != nil {
		return false, err
	}
	if existing != nil && existing.CardID != "" {
		return false, nil
	}

	folderName := extractFolderName(field(columns, row, "folder name/path"))
	if folderName == "" {
		return false, nil
	}

	board, err := imp.findOrCreateBoard(accountID, actorID, folderName, boardCache)
	if err != nil {
		return false, err
	}

	title := field(columns, row, "task name")
	if title == "" {
		title = "Untitled"
	}
	tagsJSON := field(columns, row, "tags")
	if prefix := bugFeaturePrefix(tagsJSON); prefix != "" {
		title = "[" + prefix + "] " + title
	}

	status := strings.ToLower(strings.TrimSpace(field(columns, row, "status")))
	listName := strings.TrimSpace(field(columns, row, "list name"))
	priority := extractPriority(field(columns, row, "priority"))

	record := existing
	if record == nil {
		record = &ImportedClickupTask{
			AccountID:  accountID,
			ExternalID: taskID,
		}
	}
	record.FolderName = folderName
	record.ListName = listName
	record.Title = title
	record.Status = status
	record.Priority = priority
	if err := imp.repo.Save(record); err != nil {
		return false, err
	}

	card, err := imp.lifecycle.CreateCard(accountID, actorID, usecase.CreateCardRequest{
		BoardID:     board.ID,
		Title:       title,
		Description: extractDescription(field(columns, row, "task content")),
		Publish:     true,
	})
	if err != nil {
		return false, err
	}

	if columnName, ok := clickupColumnNames[status]; ok {
		column, err := imp.findOrCreateColumn(accountID, board, columnName, columnCache)
		if err != nil {
			return false, err
		}
		if _, err := imp.lifecycle.TriageInto(accountID, actorID, card.ID, column.ID); err != nil {
			return false, err
		}
	}

	if status == "done" || status == "complete" {
		if _, err := imp.lifecycle.Close(accountID, actorID, card.ID); err != nil {
			return false, err
		}
	}

	imp.applyTags(accountID, card.ID, listName, priority, tagsJSON)

	record.CardID = card.ID
	if err := imp.repo.Save(record); err != nil {
		return false, err
	}
	return true, nil
}

func (imp *ClickupImporter) findOrCreateBoard(accountID, actorID, name string, cache map[string]*boarddomain.Board) (*boarddomain.Board, error) {
	if board, ok := cache[name]; ok {
		return board, nil
	}

	board, err := imp.boardRepo.FindByAccountAndName(accountID, name)
	if err != nil {
		return nil, err
	}
	if board == nil {
		board, err = imp.boards.CreateBoard(accountID, actorID, usecase.CreateBoardRequest{Name: name})
		if err != nil {
			return nil, err
		}
	}

	cache[name] = board
	return board, nil
}

func (imp *ClickupImporter) findOrCreateColumn(accountID string, board *boarddomain.Board, name string, cache map[string]*boarddomain.Column) (*boarddomain.Column, error) {
	cacheKey := board.ID + ":" + name
	if column, ok := cache[cacheKey]; ok {
		return column, nil
	}

	existing, err := imp.boards.ListColumns(accountID, board.ID)
	if err != nil {
		return nil, err
	}

	var column *boarddomain.Column
	for _, c := range existing {
		if c.Name == name {
			column = c
			break
		}
	}
	if column == nil {
		column, err = imp.boards.CreateColumn(accountID, board.ID, usecase.CreateColumnRequest{
			Name:     name,
			Position: len(existing),
		})
		if err != nil {
			return nil, err
		}
	}

	cache[cacheKey] = column
	return column, nil
}

// applyTags attaches the list name, non-normal priority and remaining ClickUp
// tags. Tags are best effort; failures are logged, never raised.
func (imp *ClickupImporter) applyTags(accountID, cardID, listName, priority, tagsJSON string) {
	if listName != "" {
		if _, err := imp.tags.ToggleTag(accountID, cardID, listName); err != nil {
			log.Printf("[Import] Could not tag card %s with list %q: %v", cardID, listName, err)
		}
	}

	if priority != "" && priority != "normal" {
		if _, err := imp.tags.ToggleTag(accountID, cardID, "priority: "+priority); err != nil {
			log.Printf("[Import] Could not tag card %s with priority %q: %v", cardID, priority, err)
		}
	}

	for _, tag := range parseStringArray(tagsJSON) {
		lower := strings.ToLower(tag)
		// Bug/feature already became a title prefix
		if tag == "" || lower == "bug" || lower == "feature" {
			continue
		}
		if _, err := imp.tags.ToggleTag(accountID, cardID, tag); err != nil {
			log.Printf("[Import] Could not tag card %s with %q: %v", cardID, tag, err)
		}
	}
}

// headerIndex maps lowercased header names to their column index
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

func field(columns map[string]int, row []string, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// extractFolderName handles both plain strings and JSON arrays like
// ["App Wars"], which ClickUp emits for nested folders
func extractFolderName(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return ""
	}

	var folders []string
	if err := json.Unmarshal([]byte(raw), &folders); err == nil {
		if len(folders) == 0 {
			return ""
		}
		return strings.TrimSpace(folders[0])
	}
	return raw
}

func extractDescription(raw string) string {
	if raw == "" || raw == "null" {
		return ""
	}
	return raw
}

// extractPriority maps ClickUp's numeric priority (1=urgent .. 4=low)
func extractPriority(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return "normal"
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return "normal"
	}
	switch n {
	case 1:
		return "urgent"
	case 2:
		return "high"
	case 3:
		return "normal"
	case 4:
		return "low"
	default:
		return "normal"
	}
}

// bugFeaturePrefix returns "bug" or "feature" when the ClickUp tags carry one
func bugFeaturePrefix(tagsJSON string) string {
	for _, tag := range parseStringArray(tagsJSON) {
		switch strings.ToLower(tag) {
		case "bug":
			return "bug"
		case "feature":
			return "feature"
		}
	}
	return ""
}

func parseStringArray(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "[]" || raw == "null" {
		return nil
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}
