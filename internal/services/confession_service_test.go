package services

import (
	"encoding/json"
	"strings"
	"testing"

	"finwise/internal/models"
	"finwise/internal/testutil"
)

func TestPostConfession(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewConfessionService(db)

		conversation := []models.Message{
			{Sender: "user", Text: "I bought a third mechanical keyboard"},
			{Sender: "bot", Text: "Consider a 24-hour rule before purchases"},
		}
		post, err := svc.PostConfession(conversation, "oops")
		testutil.AssertNoError(t, err)

		if post.ID == 0 {
			t.Error("expected backend-assigned id")
		}
		if post.CreatedAt.IsZero() {
			t.Error("expected backend-assigned timestamp")
		}
		if len(post.Conversation) != 2 {
			t.Errorf("expected conversation preserved, got %d messages", len(post.Conversation))
		}
	})

	t.Run("ids_are_unique_and_increasing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewConfessionService(db)

		first, err := svc.PostConfession([]models.Message{{Sender: "user", Text: "a"}}, "one")
		testutil.AssertNoError(t, err)
		second, err := svc.PostConfession([]models.Message{{Sender: "user", Text: "b"}}, "two")
		testutil.AssertNoError(t, err)

		if second.ID <= first.ID {
			t.Errorf("expected increasing ids, got %d then %d", first.ID, second.ID)
		}
	})

	t.Run("empty_conversation_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewConfessionService(db)

		_, err := svc.PostConfession(nil, "caption")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("blank_message_text_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewConfessionService(db)

		conversation := []models.Message{
			{Sender: "user", Text: "fine"},
			{Sender: "bot", Text: "   "},
		}
		_, err := svc.PostConfession(conversation, "caption")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("empty_caption_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewConfessionService(db)

		_, err := svc.PostConfession([]models.Message{{Sender: "user", Text: "x"}}, "")
		testutil.AssertNoError(t, err)
	})
}

func TestListForumView(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewConfessionService(db)

	conversation := []models.Message{
		{Sender: "user", Text: "I maxed my card"},
		{Sender: "bot", Text: "Start with a payoff schedule"},
	}
	posted, err := svc.PostConfession(conversation, "cc debt")
	testutil.AssertNoError(t, err)

	view, err := svc.ListForumView()
	testutil.AssertNoError(t, err)

	if len(view) != 1 {
		t.Fatalf("expected 1 post in forum view, got %d", len(view))
	}
	post := view[0]
	if post.ID != posted.ID || post.Caption != "cc debt" {
		t.Errorf("forum post identity mismatch: %+v", post)
	}
	if len(post.Conversation) != 2 || post.Conversation[0].Text != "I maxed my card" {
		t.Errorf("conversation text not preserved: %+v", post.Conversation)
	}

	// The serialized forum view must not contain sender attribution
	// anywhere, regardless of struct shape.
	raw, err := json.Marshal(view)
	testutil.AssertNoError(t, err)
	if strings.Contains(string(raw), "sender") || strings.Contains(string(raw), `"user"`) {
		t.Errorf("sender attribution leaked into forum view: %s", raw)
	}
}

func TestListConfessionsRaw(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewConfessionService(db)

	testutil.CreateTestConfession(t, db, "first")
	testutil.CreateTestConfession(t, db, "second")

	posts, err := svc.ListConfessionsRaw()
	testutil.AssertNoError(t, err)

	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Caption != "first" || posts[1].Caption != "second" {
		t.Errorf("expected insertion order, got %s then %s", posts[0].Caption, posts[1].Caption)
	}
	if posts[0].Conversation[0].Sender == "" {
		t.Error("raw listing should keep sender attribution")
	}
}
