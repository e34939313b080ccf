package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"scholarconnect/models"
)

// DefaultPageSize caps thread and thread-message listings. Direct-message
// history is unbounded when the caller passes limit <= 0, preserving the
// existing chat-view behavior.
const DefaultPageSize = 50

// Store is the persistence boundary for messages and threads. All writes
// are single-row inserts; there are no cross-row transactions.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ThreadMessageRow is a thread message joined with the sender's name, the
// shape the thread view consumes.
type ThreadMessageRow struct {
	ID        uint      `json:"id"`
	SenderID  uint      `json:"sender_id"`
	ThreadID  uint      `json:"thread_id"`
	Text      string    `json:"message_text"`
	Timestamp time.Time `json:"created_at"`
	Name      string    `json:"name"`
}

// AppendDirectMessage persists one direct message and returns the stored row.
// Self-messaging is permitted; it is meaningless but not an error.
func (s *Store) AppendDirectMessage(senderID, recipientID uint, text string) (*models.DirectMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if err := s.usersExist(senderID, recipientID); err != nil {
		return nil, err
	}
	msg := models.DirectMessage{
		SenderID:    senderID,
		RecipientID: recipientID,
		Text:        text,
		Timestamp:   time.Now(),
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("append direct message: %w", err)
	}
	return &msg, nil
}

// AppendThreadMessage persists one thread message and returns the stored row.
func (s *Store) AppendThreadMessage(senderID, threadID uint, text string) (*models.ThreadMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if err := s.usersExist(senderID); err != nil {
		return nil, err
	}
	var thread models.Thread
	if err := s.db.First(&thread, threadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThreadNotFound
		}
		return nil, fmt.Errorf("lookup thread: %w", err)
	}
	msg := models.ThreadMessage{
		SenderID:  senderID,
		ThreadID:  threadID,
		Text:      text,
		Timestamp: time.Now(),
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("append thread message: %w", err)
	}
	return &msg, nil
}

// ListDirectMessages returns the conversation between two users in both
// directions, oldest first. limit <= 0 returns everything.
func (s *Store) ListDirectMessages(userA, userB uint, limit int) ([]models.DirectMessage, error) {
	q := s.db.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Order("timestamp ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var msgs []models.DirectMessage
	if err := q.Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("list direct messages: %w", err)
	}
	return msgs, nil
}

// ListThreadMessages returns the most recent messages of a thread, newest
// first. An unknown thread id yields an empty slice, not an error; the
// thread view treats "no messages yet" and "no such thread" the same way.
func (s *Store) ListThreadMessages(threadID uint, limit int) ([]ThreadMessageRow, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	var rows []ThreadMessageRow
	err := s.db.
		Table("thread_messages tm").
		Select("tm.id, tm.sender_id, tm.thread_id, tm.text, tm.timestamp, u.name").
		Joins("LEFT JOIN users u ON u.id = tm.sender_id").
		Where("tm.thread_id = ? AND tm.deleted_at IS NULL", threadID).
		Order("tm.timestamp DESC, tm.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list thread messages: %w", err)
	}
	return rows, nil
}

// CreateThread creates a thread with a unique title. The pre-check keeps the
// common duplicate path cheap, but two concurrent creates can both pass it;
// the unique index decides the loser, which still gets ErrDuplicateTitle.
func (s *Store) CreateThread(title string) (*models.Thread, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	var existing models.Thread
	err := s.db.Where("title = ?", title).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateTitle
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check thread title: %w", err)
	}

	now := time.Now()
	thread := models.Thread{
		Title:     title,
		CreatedOn: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}
	if err := s.db.Create(&thread).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("create thread: %w", err)
	}
	return &thread, nil
}

// ListThreads returns the most recently created threads first.
func (s *Store) ListThreads(limit int) ([]models.Thread, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	var threads []models.Thread
	err := s.db.
		Order("created_on DESC, id DESC").
		Limit(limit).
		Find(&threads).Error
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}
	return threads, nil
}

// usersExist verifies every distinct id references a user row.
func (s *Store) usersExist(ids ...uint) error {
	distinct := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}
	var count int64
	if err := s.db.Model(&models.User{}).Where("id IN ?", distinct).Count(&count).Error; err != nil {
		return fmt.Errorf("check users: %w", err)
	}
	if count != int64(len(distinct)) {
		return ErrUserNotFound
	}
	return nil
}
