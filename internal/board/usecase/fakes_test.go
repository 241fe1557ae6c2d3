package usecase

import (
	"errors"
	"fmt"
	"sort"
	"time"

	boarddomain "fizzy-backend/internal/board/domain"
)

// In-memory repository fakes. They mirror the gorm implementations' contracts:
// not-found is (nil, nil), Create assigns IDs, account scoping is enforced.

type fakeBoardRepo struct {
	boards map[string]*boarddomain.Board
	seq    int
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{boards: map[string]*boarddomain.Board{}}
}

func (r *fakeBoardRepo) Create(board *boarddomain.Board) error {
	if board.ID == "" {
		r.seq++
		board.ID = fmt.Sprintf("board-%d", r.seq)
	}
	r.boards[board.ID] = board
	return nil
}

func (r *fakeBoardRepo) FindByID(accountID, id string) (*boarddomain.Board, error) {
	board, ok := r.boards[id]
	if !ok || board.AccountID != accountID {
		return nil, nil
	}
	return board, nil
}

func (r *fakeBoardRepo) FindByIDAnyAccount(id string) (*boarddomain.Board, error) {
	board, ok := r.boards[id]
	if !ok {
		return nil, nil
	}
	return board, nil
}

func (r *fakeBoardRepo) FindByAccount(accountID string) ([]*boarddomain.Board, error) {
	var boards []*boarddomain.Board
	for _, b := range r.boards {
		if b.AccountID == accountID {
			boards = append(boards, b)
		}
	}
	sort.Slice(boards, func(i, j int) bool { return boards[i].Name < boards[j].Name })
	return boards, nil
}

func (r *fakeBoardRepo) FindByAccountAndName(accountID, name string) (*boarddomain.Board, error) {
	for _, b := range r.boards {
		if b.AccountID == accountID && b.Name == name {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBoardRepo) FindAll() ([]*boarddomain.Board, error) {
	var boards []*boarddomain.Board
	for _, b := range r.boards {
		boards = append(boards, b)
	}
	sort.Slice(boards, func(i, j int) bool { return boards[i].ID < boards[j].ID })
	return boards, nil
}

func (r *fakeBoardRepo) Update(board *boarddomain.Board) error {
	r.boards[board.ID] = board
	return nil
}

func (r *fakeBoardRepo) Delete(accountID, id string) error {
	delete(r.boards, id)
	return nil
}

type fakeColumnRepo struct {
	columns map[string]*boarddomain.Column
	seq     int
}

func newFakeColumnRepo() *fakeColumnRepo {
	return &fakeColumnRepo{columns: map[string]*boarddomain.Column{}}
}

func (r *fakeColumnRepo) Create(column *boarddomain.Column) error {
	if column.ID == "" {
		r.seq++
		column.ID = fmt.Sprintf("column-%d", r.seq)
	}
	r.columns[column.ID] = column
	return nil
}

func (r *fakeColumnRepo) FindByID(accountID, id string) (*boarddomain.Column, error) {
	column, ok := r.columns[id]
	if !ok || column.AccountID != accountID {
		return nil, nil
	}
	return column, nil
}

func (r *fakeColumnRepo) FindByBoard(accountID, boardID string) ([]*boarddomain.Column, error) {
	var columns []*boarddomain.Column
	for _, c := range r.columns {
		if c.AccountID == accountID && c.BoardID == boardID {
			columns = append(columns, c)
		}
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i].Position < columns[j].Position })
	return columns, nil
}

func (r *fakeColumnRepo) FindByBoardAndName(accountID, boardID, name string) (*boarddomain.Column, error) {
	for _, c := range r.columns {
		if c.AccountID == accountID && c.BoardID == boardID && c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeColumnRepo) Update(column *boarddomain.Column, touchCards bool) error {
	r.columns[column.ID] = column
	return nil
}

func (r *fakeColumnRepo) Delete(accountID, id string) error {
	delete(r.columns, id)
	return nil
}

type fakeCardRepo struct {
	cards map[string]*boarddomain.Card
	seq   int

	// card IDs whose Update fails, for failure-isolation tests
	failUpdate map[string]bool
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{
		cards:      map[string]*boarddomain.Card{},
		failUpdate: map[string]bool{},
	}
}

// cloneCard keeps the store isolated from caller mutations, the way a real
// database round-trip would
func cloneCard(card *boarddomain.Card) *boarddomain.Card {
	cp := *card
	return &cp
}

func (r *fakeCardRepo) Create(card *boarddomain.Card) error {
	if card.ID == "" {
		r.seq++
		card.ID = fmt.Sprintf("card-%d", r.seq)
	}
	r.cards[card.ID] = cloneCard(card)
	return nil
}

func (r *fakeCardRepo) FindByID(accountID, id string) (*boarddomain.Card, error) {
	card, ok := r.cards[id]
	if !ok || card.AccountID != accountID {
		return nil, nil
	}
	return cloneCard(card), nil
}

func (r *fakeCardRepo) FindByBoard(accountID, boardID string) ([]*boarddomain.Card, error) {
	var cards []*boarddomain.Card
	for _, c := range r.cards {
		if c.AccountID == accountID && c.BoardID == boardID {
			cards = append(cards, cloneCard(c))
		}
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].LastActiveAt.After(cards[j].LastActiveAt) })
	return cards, nil
}

func (r *fakeCardRepo) FindAwaitingTriage(accountID, boardID string) ([]*boarddomain.Card, error) {
	var cards []*boarddomain.Card
	for _, c := range r.cards {
		if c.AccountID == accountID && c.BoardID == boardID && c.Published() &&
			c.State() == boarddomain.CardStateAwaitingTriage {
			cards = append(cards, cloneCard(c))
		}
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards, nil
}

func (r *fakeCardRepo) FindAutoPostponeCandidates(boardID string, cutoff time.Time) ([]*boarddomain.Card, error) {
	var cards []*boarddomain.Card
	for _, c := range r.cards {
		if c.BoardID == boardID && c.Published() && c.ColumnID != nil &&
			c.PostponedAt == nil && c.ClosedAt == nil && c.LastActiveAt.Before(cutoff) {
			cards = append(cards, cloneCard(c))
		}
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards, nil
}

func (r *fakeCardRepo) Update(card *boarddomain.Card) error {
	if r.failUpdate[card.ID] {
		return errors.New("simulated storage failure")
	}
	r.cards[card.ID] = cloneCard(card)
	return nil
}

func (r *fakeCardRepo) Delete(accountID, id string) error {
	delete(r.cards, id)
	return nil
}

type fakeTimeEntryRepo struct {
	entries  []*boarddomain.TimeEntry
	comments *fakeCommentRepo
	cards    *fakeCardRepo
	seq      int
}

func newFakeTimeEntryRepo(cards *fakeCardRepo, comments *fakeCommentRepo) *fakeTimeEntryRepo {
	return &fakeTimeEntryRepo{cards: cards, comments: comments}
}

func (r *fakeTimeEntryRepo) CreateWithComment(entry *boarddomain.TimeEntry, comment *boarddomain.Comment) error {
	r.seq++
	entry.ID = fmt.Sprintf("entry-%d", r.seq)
	comment.ID = fmt.Sprintf("entry-comment-%d", r.seq)
	r.entries = append(r.entries, entry)
	r.comments.comments = append(r.comments.comments, comment)
	return nil
}

func (r *fakeTimeEntryRepo) FindByCard(accountID, cardID string) ([]*boarddomain.TimeEntry, error) {
	var entries []*boarddomain.TimeEntry
	for _, e := range r.entries {
		if e.AccountID == accountID && e.CardID == cardID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *fakeTimeEntryRepo) FindByCardAndUser(accountID, cardID, userID string) ([]*boarddomain.TimeEntry, error) {
	var entries []*boarddomain.TimeEntry
	for _, e := range r.entries {
		if e.AccountID == accountID && e.CardID == cardID && e.UserID == userID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *fakeTimeEntryRepo) SumHoursForCard(accountID, cardID string) (float64, error) {
	var total float64
	for _, e := range r.entries {
		if e.AccountID == accountID && e.CardID == cardID {
			total += e.Hours
		}
	}
	return total, nil
}

func (r *fakeTimeEntryRepo) sumWhere(accountID, boardID string, match func(*boarddomain.Card) bool) (float64, error) {
	var total float64
	for _, e := range r.entries {
		card, ok := r.cards.cards[e.CardID]
		if !ok || e.AccountID != accountID {
			continue
		}
		if boardID != "" && card.BoardID != boardID {
			continue
		}
		if match(card) {
			total += e.Hours
		}
	}
	return total, nil
}

func (r *fakeTimeEntryRepo) SumHoursAwaitingTriage(accountID, boardID string) (float64, error) {
	return r.sumWhere(accountID, boardID, func(c *boarddomain.Card) bool {
		return c.Published() && c.State() == boarddomain.CardStateAwaitingTriage
	})
}

func (r *fakeTimeEntryRepo) SumHoursPostponed(accountID, boardID string) (float64, error) {
	return r.sumWhere(accountID, boardID, func(c *boarddomain.Card) bool {
		return c.Published() && c.PostponedAt != nil && c.ClosedAt == nil
	})
}

func (r *fakeTimeEntryRepo) SumHoursClosed(accountID, boardID string) (float64, error) {
	return r.sumWhere(accountID, boardID, func(c *boarddomain.Card) bool {
		return c.ClosedAt != nil
	})
}

func (r *fakeTimeEntryRepo) SumHoursForColumn(accountID, columnID string) (float64, error) {
	return r.sumWhere(accountID, "", func(c *boarddomain.Card) bool {
		return c.Published() && c.ColumnID != nil && *c.ColumnID == columnID && c.ClosedAt == nil
	})
}

type fakeCommentRepo struct {
	comments []*boarddomain.Comment
	seq      int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (r *fakeCommentRepo) Create(comment *boarddomain.Comment) error {
	r.seq++
	comment.ID = fmt.Sprintf("comment-%d", r.seq)
	r.comments = append(r.comments, comment)
	return nil
}

func (r *fakeCommentRepo) FindByCard(accountID, cardID string) ([]*boarddomain.Comment, error) {
	var comments []*boarddomain.Comment
	for _, c := range r.comments {
		if c.AccountID == accountID && c.CardID == cardID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

type fakeTagRepo struct {
	tags        map[string]*boarddomain.Tag
	attachments map[string]map[string]bool
	seq         int
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{
		tags:        map[string]*boarddomain.Tag{},
		attachments: map[string]map[string]bool{},
	}
}

func (r *fakeTagRepo) Create(tag *boarddomain.Tag) error {
	if tag.ID == "" {
		r.seq++
		tag.ID = fmt.Sprintf("tag-%d", r.seq)
	}
	r.tags[tag.ID] = tag
	return nil
}

func (r *fakeTagRepo) FindByLabel(accountID, label string) (*boarddomain.Tag, error) {
	for _, t := range r.tags {
		if t.AccountID == accountID && t.Label == label {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTagRepo) FindByCard(cardID string) ([]*boarddomain.Tag, error) {
	var tags []*boarddomain.Tag
	for tagID, attached := range r.attachments[cardID] {
		if attached {
			tags = append(tags, r.tags[tagID])
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Label < tags[j].Label })
	return tags, nil
}

func (r *fakeTagRepo) Attached(cardID, tagID string) (bool, error) {
	return r.attachments[cardID][tagID], nil
}

func (r *fakeTagRepo) Attach(cardID, tagID string) error {
	if r.attachments[cardID] == nil {
		r.attachments[cardID] = map[string]bool{}
	}
	r.attachments[cardID][tagID] = true
	return nil
}

func (r *fakeTagRepo) Detach(cardID, tagID string) error {
	delete(r.attachments[cardID], tagID)
	return nil
}

type fakeAccountSettings struct {
	days *int
}

func (s *fakeAccountSettings) AutoPostponeDaysFor(accountID string) (*int, error) {
	return s.days, nil
}

type fakeUserDirectory struct {
	names map[string]string
}

func (d *fakeUserDirectory) DisplayName(userID string) (string, error) {
	return d.names[userID], nil
}

type fakeDispatcher struct {
	events []boarddomain.Event
}

func (d *fakeDispatcher) Dispatch(events []boarddomain.Event) {
	d.events = append(d.events, events...)
}

// fixture wires a lifecycle usecase over the fakes with one board and its
// three default columns, ready for transition tests
type fixture struct {
	lifecycle  LifecycleUsecase
	boards     BoardUsecase
	tags       TagUsecase
	boardRepo  *fakeBoardRepo
	columnRepo *fakeColumnRepo
	cardRepo   *fakeCardRepo
	entryRepo  *fakeTimeEntryRepo
	comments   *fakeCommentRepo
	tagRepo    *fakeTagRepo
	dispatcher *fakeDispatcher
	settings   *fakeAccountSettings
	directory  *fakeUserDirectory

	board   *boarddomain.Board
	columns []*boarddomain.Column
}

const (
	testAccount = "account-1"
	testActor   = "user-1"
)

func newFixture() *fixture {
	boardRepo := newFakeBoardRepo()
	columnRepo := newFakeColumnRepo()
	cardRepo := newFakeCardRepo()
	commentRepo := newFakeCommentRepo()
	entryRepo := newFakeTimeEntryRepo(cardRepo, commentRepo)
	tagRepo := newFakeTagRepo()
	settings := &fakeAccountSettings{}
	directory := &fakeUserDirectory{names: map[string]string{testActor: "Alice"}}
	dispatcher := &fakeDispatcher{}

	lifecycle := NewLifecycleUsecase(cardRepo, boardRepo, columnRepo, entryRepo, commentRepo, settings, directory, 30)
	lifecycle.SetEventDispatcher(dispatcher)
	boards := NewBoardUsecase(boardRepo, columnRepo, entryRepo, settings, 30)
	tags := NewTagUsecase(tagRepo, cardRepo)

	f := &fixture{
		lifecycle:  lifecycle,
		boards:     boards,
		tags:       tags,
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
		cardRepo:   cardRepo,
		entryRepo:  entryRepo,
		comments:   commentRepo,
		tagRepo:    tagRepo,
		dispatcher: dispatcher,
		settings:   settings,
		directory:  directory,
	}

	board, err := boards.CreateBoard(testAccount, testActor, CreateBoardRequest{Name: "Main"})
	if err != nil {
		panic(err)
	}
	f.board = board
	f.columns, err = columnRepo.FindByBoard(testAccount, board.ID)
	if err != nil {
		panic(err)
	}
	return f
}

// publishedCard creates a published card awaiting triage
func (f *fixture) publishedCard(title string) *boarddomain.Card {
	card, err := f.lifecycle.CreateCard(testAccount, testActor, CreateCardRequest{
		BoardID: f.board.ID,
		Title:   title,
		Publish: true,
	})
	if err != nil {
		panic(err)
	}
	return card
}

// columnNamed returns the fixture board's column with the given name
func (f *fixture) columnNamed(name string) *boarddomain.Column {
	for _, c := range f.columns {
		if c.Name == name {
			return c
		}
	}
	panic("no column named " + name)
}
