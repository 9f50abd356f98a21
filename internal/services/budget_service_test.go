package services

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"finwise/internal/models"
	"finwise/internal/testutil"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestUpsertBudget(t *testing.T) {
	t.Run("creates_on_first_entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		total := dec(1000)
		budget, err := svc.UpsertBudget("2026-09", &total, nil)
		testutil.AssertNoError(t, err)

		if budget.ID == "" {
			t.Fatal("expected generated budget ID")
		}
		if budget.Month != "2026-09" {
			t.Errorf("expected month 2026-09, got %s", budget.Month)
		}
		if !budget.TotalBudget.Equal(dec(1000)) {
			t.Errorf("expected total 1000, got %s", budget.TotalBudget)
		}
		if budget.SchemaVersion != models.BudgetSchemaVersion {
			t.Errorf("expected schema version %d, got %d", models.BudgetSchemaVersion, budget.SchemaVersion)
		}
	})

	t.Run("updates_existing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		testutil.CreateTestBudget(t, db, "2026-09", 1000)

		income := dec(1500)
		budget, err := svc.UpsertBudget("2026-09", nil, &income)
		testutil.AssertNoError(t, err)

		if !budget.IncomeAllowance.Equal(dec(1500)) {
			t.Errorf("expected income 1500, got %s", budget.IncomeAllowance)
		}
		if !budget.TotalBudget.Equal(dec(1000)) {
			t.Errorf("total should be unchanged, got %s", budget.TotalBudget)
		}
	})

	t.Run("lowering_total_below_allocation_is_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		budget := testutil.CreateTestBudget(t, db, "2026-09", 1000)
		testutil.CreateTestCategory(t, db, budget.ID, "Food", 800)

		total := dec(500)
		_, err := svc.UpsertBudget("2026-09", &total, nil)
		testutil.AssertNoError(t, err)

		// Remaining silently floors at zero instead of going negative.
		remaining, err := svc.Remaining("2026-09")
		testutil.AssertNoError(t, err)
		if !remaining.Equal(decimal.Zero) {
			t.Errorf("expected remaining 0, got %s", remaining)
		}
	})

	t.Run("invalid_month_key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		total := dec(100)
		_, err := svc.UpsertBudget("september", &total, nil)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestAddCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		testutil.CreateTestBudget(t, db, "2026-09", 1000)

		budget, err := svc.AddCategory("2026-09", "Food", dec(400), "Groceries and eating out")
		testutil.AssertNoError(t, err)

		if len(budget.Categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(budget.Categories))
		}
		if budget.Categories[0].Name != "Food" {
			t.Errorf("expected name Food, got %s", budget.Categories[0].Name)
		}
		if !budget.Categories[0].Amount.Equal(dec(400)) {
			t.Errorf("expected amount 400, got %s", budget.Categories[0].Amount)
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		testutil.CreateTestBudget(t, db, "2026-09", 1000)

		cases := []struct {
			name, catName, description string
			amount                     decimal.Decimal
		}{
			{"empty_name", "", "desc", dec(100)},
			{"blank_name", "   ", "desc", dec(100)},
			{"zero_amount", "Food", "desc", dec(0)},
			{"negative_amount", "Food", "desc", dec(-5)},
			{"empty_description", "Food", "", dec(100)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.AddCategory("2026-09", tc.catName, tc.amount, tc.description)
				testutil.AssertAppError(t, err, "VALIDATION_ERROR")
			})
		}
	})

	t.Run("duplicate_name_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		testutil.CreateTestBudget(t, db, "2026-09", 1000)

		_, err := svc.AddCategory("2026-09", "Food", dec(400), "groceries")
		testutil.AssertNoError(t, err)

		_, err = svc.AddCategory("2026-09", "food", dec(100), "more groceries")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("allocation_exceeded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		testutil.CreateTestBudget(t, db, "2026-09", 1000)

		_, err := svc.AddCategory("2026-09", "Food", dec(400), "groceries")
		testutil.AssertNoError(t, err)

		// 400 + 700 = 1100 > 1000
		_, err = svc.AddCategory("2026-09", "Transport", dec(700), "fuel")
		testutil.AssertAppError(t, err, "ALLOCATION_EXCEEDED")

		// The failed add left no partial state behind.
		budget, err := svc.GetBudget("2026-09")
		testutil.AssertNoError(t, err)
		if len(budget.Categories) != 1 {
			t.Errorf("expected 1 category after rejected add, got %d", len(budget.Categories))
		}
	})

	t.Run("budget_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.AddCategory("2026-09", "Food", dec(400), "groceries")
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestEditCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		budget := testutil.CreateTestBudget(t, db, "2026-09", 1000)
		cat := testutil.CreateTestCategory(t, db, budget.ID, "Food", 400)

		updated, err := svc.EditCategory("2026-09", cat.ID, "Meals", dec(500), "all meals")
		testutil.AssertNoError(t, err)

		if updated.Categories[0].Name != "Meals" {
			t.Errorf("expected renamed category, got %s", updated.Categories[0].Name)
		}
		if !updated.Categories[0].Amount.Equal(dec(500)) {
			t.Errorf("expected amount 500, got %s", updated.Categories[0].Amount)
		}
	})

	t.Run("duplicate_excludes_self", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		budget := testutil.CreateTestBudget(t, db, "2026-09", 1000)
		cat := testutil.CreateTestCategory(t, db, budget.ID, "Food", 400)
		testutil.CreateTestCategory(t, db, budget.ID, "Transport", 300)

		// Keeping its own name (case changed) is fine.
		_, err := svc.EditCategory("2026-09", cat.ID, "FOOD", dec(400), "groceries")
		testutil.AssertNoError(t, err)

		// Taking another category's name is not.
		_, err = svc.EditCategory("2026-09", cat.ID, "transport", dec(400), "groceries")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("substituted_sum_exceeds_total", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		budget := testutil.CreateTestBudget(t, db, "2026-09", 1000)
		cat := testutil.CreateTestCategory(t, db, budget.ID, "Food", 400)
		testutil.CreateTestCategory(t, db, budget.ID, "Transport", 300)

		// 800 + 300 = 1100 > 1000
		_, err := svc.EditCategory("2026-09", cat.ID, "Food", dec(800), "groceries")
		testutil.AssertAppError(t, err, "ALLOCATION_EXCEEDED")

		// 700 + 300 = 1000 is exactly at the ceiling and allowed.
		_, err = svc.EditCategory("2026-09", cat.ID, "Food", dec(700), "groceries")
		testutil.AssertNoError(t, err)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		testutil.CreateTestBudget(t, db, "2026-09", 1000)

		_, err := svc.EditCategory("2026-09", "missing-id", "Food", dec(100), "desc")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("removes_category_keeps_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		budget := testutil.CreateTestBudget(t, db, "2026-09", 1000)
		cat := testutil.CreateTestCategory(t, db, budget.ID, "Food", 400)
		testutil.CreateTestExpense(t, db, "Food", "2026-09-03", 50)

		testutil.AssertNoError(t, svc.DeleteCategory("2026-09", cat.ID))

		// The category's summary disappears entirely.
		summaries, err := svc.Summaries("2026-09")
		testutil.AssertNoError(t, err)
		if len(summaries) != 0 {
			t.Errorf("expected no summaries after delete, got %d", len(summaries))
		}

		// The expense is still retrievable in the raw list.
		var count int64
		if err := db.Model(&models.Expense{}).Where("category = ?", "Food").Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected orphaned expense to survive, got count %d", count)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		testutil.CreateTestBudget(t, db, "2026-09", 1000)

		err := svc.DeleteCategory("2026-09", "missing-id")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestRemainingToAllocate(t *testing.T) {
	cats := func(amounts ...int64) []models.Category {
		out := make([]models.Category, len(amounts))
		for i, a := range amounts {
			out[i] = models.Category{Amount: dec(a)}
		}
		return out
	}

	t.Run("basic", func(t *testing.T) {
		got := RemainingToAllocate(dec(1000), cats(400, 300))
		if !got.Equal(dec(300)) {
			t.Errorf("expected 300, got %s", got)
		}
	})

	t.Run("floors_at_zero", func(t *testing.T) {
		got := RemainingToAllocate(dec(500), cats(400, 300))
		if !got.Equal(decimal.Zero) {
			t.Errorf("expected 0, got %s", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		first := RemainingToAllocate(dec(1000), cats(400))
		second := RemainingToAllocate(dec(1000), cats(400))
		if !first.Equal(second) {
			t.Errorf("expected identical results, got %s and %s", first, second)
		}
	})
}

// Random add/edit sequences must never leave the allocation invariant
// violated: every accepted operation keeps sum(categories) <= total.
func TestAllocationInvariant_RandomSequences(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db)
	testutil.CreateTestBudget(t, db, "2026-09", 1000)

	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 60; i++ {
		budget, err := svc.GetBudget("2026-09")
		testutil.AssertNoError(t, err)

		amount := dec(rng.Int63n(600) + 1)
		if rng.Intn(2) == 0 || len(budget.Categories) == 0 {
			_, _ = svc.AddCategory("2026-09", fmt.Sprintf("cat-%d", i), amount, "generated")
		} else {
			target := budget.Categories[rng.Intn(len(budget.Categories))]
			_, _ = svc.EditCategory("2026-09", target.ID, target.Name, amount, "edited")
		}

		after, err := svc.GetBudget("2026-09")
		testutil.AssertNoError(t, err)
		sum := decimal.Zero
		for _, c := range after.Categories {
			sum = sum.Add(c.Amount)
		}
		if sum.GreaterThan(after.TotalBudget) {
			t.Fatalf("step %d: allocation invariant violated: sum %s > total %s", i, sum, after.TotalBudget)
		}
	}
}

func TestSummaries(t *testing.T) {
	t.Run("spent_remaining_percentages", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		budget := testutil.CreateTestBudget(t, db, "2026-09", 1000)
		testutil.CreateTestCategory(t, db, budget.ID, "Food", 400)
		testutil.CreateTestCategory(t, db, budget.ID, "Transport", 200)
		testutil.CreateTestExpense(t, db, "Food", "2026-09-01", 100)
		testutil.CreateTestExpense(t, db, "Food", "2026-09-10", 50)
		// Different month: must not count.
		testutil.CreateTestExpense(t, db, "Food", "2026-08-20", 999)

		summaries, err := svc.Summaries("2026-09")
		testutil.AssertNoError(t, err)

		if len(summaries) != 2 {
			t.Fatalf("expected 2 summaries, got %d", len(summaries))
		}
		food := summaries[0]
		if food.CategoryName != "Food" {
			t.Fatalf("expected categories in insertion order, got %s first", food.CategoryName)
		}
		if !food.Spent.Equal(dec(150)) {
			t.Errorf("expected spent 150, got %s", food.Spent)
		}
		if !food.Remaining.Equal(dec(250)) {
			t.Errorf("expected remaining 250, got %s", food.Remaining)
		}
		if food.PercentRaw != 37.5 {
			t.Errorf("expected percentRaw 37.5, got %v", food.PercentRaw)
		}
		if summaries[1].Spent.Sign() != 0 {
			t.Errorf("expected Transport spent 0, got %s", summaries[1].Spent)
		}
	})

	t.Run("case_sensitive_match", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		budget := testutil.CreateTestBudget(t, db, "2026-09", 1000)
		testutil.CreateTestCategory(t, db, budget.ID, "Food", 400)
		testutil.CreateTestExpense(t, db, "food", "2026-09-01", 100)

		summaries, err := svc.Summaries("2026-09")
		testutil.AssertNoError(t, err)
		if summaries[0].Spent.Sign() != 0 {
			t.Errorf("lowercase expense must not match, got spent %s", summaries[0].Spent)
		}
	})

	t.Run("zero_budgeted_no_divide_by_zero", func(t *testing.T) {
		summaries := ComputeCategorySummaries(
			[]models.Category{{Name: "Misc", Amount: decimal.Zero}},
			[]models.Expense{{Category: "Misc", Amount: dec(50)}},
		)
		if summaries[0].PercentRaw != 0 {
			t.Errorf("expected percentRaw 0 for zero budget, got %v", summaries[0].PercentRaw)
		}
		if summaries[0].PercentBar != 0 {
			t.Errorf("expected percentBar 0 for zero budget, got %v", summaries[0].PercentBar)
		}
	})

	t.Run("overspend_clamps_bar", func(t *testing.T) {
		summaries := ComputeCategorySummaries(
			[]models.Category{{Name: "Food", Amount: dec(100)}},
			[]models.Expense{{Category: "Food", Amount: dec(150)}},
		)
		s := summaries[0]
		if s.PercentRaw <= 100 {
			t.Errorf("expected percentRaw > 100, got %v", s.PercentRaw)
		}
		if s.PercentBar != 100 {
			t.Errorf("expected percentBar clamped to 100, got %v", s.PercentBar)
		}
		if !s.Remaining.Equal(dec(-50)) {
			t.Errorf("expected remaining -50, got %s", s.Remaining)
		}
	})
}

func TestImportBudget(t *testing.T) {
	t.Run("canonical_list_shape", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		raw := []byte(`{
			"month": "2026-09",
			"incomeAllowance": 1500,
			"totalBudget": 1000,
			"categories": [
				{"name": "Food", "amount": 400, "description": "groceries"},
				{"name": "Transport", "amount": 200, "description": "fuel"}
			]
		}`)

		budget, err := svc.ImportBudget(raw)
		testutil.AssertNoError(t, err)

		if len(budget.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(budget.Categories))
		}
		if budget.SchemaVersion != models.BudgetSchemaVersion {
			t.Errorf("expected schema version stamped, got %d", budget.SchemaVersion)
		}
		if !budget.TotalBudget.Equal(dec(1000)) {
			t.Errorf("expected total 1000, got %s", budget.TotalBudget)
		}
	})

	t.Run("legacy_map_shape_normalized", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		raw := []byte(`{
			"month": "2026-09",
			"totalBudget": 1000,
			"categories": {"Transport": 200, "Food": 400}
		}`)

		budget, err := svc.ImportBudget(raw)
		testutil.AssertNoError(t, err)

		if len(budget.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(budget.Categories))
		}
		// Map shape is normalized with names sorted for stability.
		if budget.Categories[0].Name != "Food" || budget.Categories[1].Name != "Transport" {
			t.Errorf("unexpected category order: %s, %s", budget.Categories[0].Name, budget.Categories[1].Name)
		}
		if !budget.Categories[0].Amount.Equal(dec(400)) {
			t.Errorf("expected Food amount 400, got %s", budget.Categories[0].Amount)
		}
	})

	t.Run("replaces_existing_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		budget := testutil.CreateTestBudget(t, db, "2026-09", 500)
		testutil.CreateTestCategory(t, db, budget.ID, "Old", 100)

		raw := []byte(`{"month": "2026-09", "totalBudget": 900, "categories": [{"name": "New", "amount": 300, "description": "x"}]}`)
		imported, err := svc.ImportBudget(raw)
		testutil.AssertNoError(t, err)

		if !imported.TotalBudget.Equal(dec(900)) {
			t.Errorf("expected total 900, got %s", imported.TotalBudget)
		}
		if len(imported.Categories) != 1 || imported.Categories[0].Name != "New" {
			t.Errorf("expected categories replaced, got %+v", imported.Categories)
		}
	})

	t.Run("invalid_payload", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.ImportBudget([]byte(`{"month": "2026-09", "categories": 42}`))
		testutil.AssertAppError(t, err, "INVALID_LEGACY_BUDGET")
	})
}

// Persisting and reloading a budget yields field-for-field equality for
// everything except regenerated timestamps.
func TestBudgetRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db)

	total := dec(1000)
	income := dec(1200)
	created, err := svc.UpsertBudget("2026-09", &total, &income)
	testutil.AssertNoError(t, err)
	withCat, err := svc.AddCategory("2026-09", "Food", dec(400), "groceries")
	testutil.AssertNoError(t, err)

	reloaded, err := svc.GetBudget("2026-09")
	testutil.AssertNoError(t, err)

	if reloaded.ID != created.ID || reloaded.Month != created.Month {
		t.Errorf("identity mismatch after reload")
	}
	if !reloaded.TotalBudget.Equal(total) || !reloaded.IncomeAllowance.Equal(income) {
		t.Errorf("totals mismatch after reload: %s / %s", reloaded.TotalBudget, reloaded.IncomeAllowance)
	}
	if len(reloaded.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(reloaded.Categories))
	}
	got, want := reloaded.Categories[0], withCat.Categories[0]
	if got.ID != want.ID || got.Name != want.Name || !got.Amount.Equal(want.Amount) || got.Description != want.Description {
		t.Errorf("category mismatch after reload: got %+v want %+v", got, want)
	}
}
