package pyft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLedger returns a ledger over a fresh store with one account and one
// category ready to receive entries.
func testLedger(t *testing.T) *Ledger {
	t.Helper()
	store := testStore(t)
	ledger := NewLedger(store)
	_, err := ledger.CreateAccount(Account{Name: "checking", Balance: A(100)})
	require.NoError(t, err)
	_, err = ledger.CreateCategory(Category{Name: "food", Color: "00FF00"})
	require.NoError(t, err)
	return ledger
}

func entry(name string, amount Amount) Entry {
	return Entry{Name: name, Amount: amount, Category: "food", Account: "checking", Date: Today()}
}

func TestCreateEntryAdjustsBalance(t *testing.T) {
	ledger := testLedger(t)

	res, err := ledger.CreateEntry(entry("salary", A(2000)), false)
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
	assert.True(t, res.BalanceApplied)
	assert.True(t, res.Delta.Equal(A(2000)))
	assert.True(t, res.NewBalance.Equal(A(2100)))
	assert.Empty(t, res.BalanceWarning)

	a, err := ledger.Account("checking")
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(A(2100)), "balance after = balance before + amount")
}

func TestCreateEntryDuplicateNeverDoubleCounts(t *testing.T) {
	ledger := testLedger(t)

	_, err := ledger.CreateEntry(entry("rent", A(-50)), false)
	require.NoError(t, err)

	// Re-creating the same name with a different amount updates the entry
	// but must not touch the balance a second time.
	res, err := ledger.CreateEntry(entry("rent", A(-999)), false)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.False(t, res.BalanceApplied)
	assert.NotEmpty(t, res.Warnings)

	a, err := ledger.Account("checking")
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(A(50)), "balance reflects only the original creation")

	e, err := ledger.Entry("rent")
	require.NoError(t, err)
	assert.True(t, e.Amount.Equal(A(-999)), "the entry itself was updated in place")
}

func TestCreateEntryExempt(t *testing.T) {
	ledger := testLedger(t)

	res, err := ledger.CreateEntry(entry("gift", A(500)), true)
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
	assert.False(t, res.BalanceApplied, "exempt entries never touch the balance")

	a, err := ledger.Account("checking")
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(A(100)), "balance unchanged under exemption")
}

func TestCreateEntryNegativeBalanceWarns(t *testing.T) {
	ledger := testLedger(t)

	res, err := ledger.CreateEntry(entry("splurge", A(-150.25)), false)
	require.NoError(t, err)
	assert.True(t, res.BalanceApplied)
	assert.True(t, res.NewBalance.Equal(A(-50.25)))
	assert.Contains(t, res.BalanceWarning, "-$50.25")
	assert.Contains(t, res.BalanceWarning, "checking")
}

func TestCreateEntryValidation(t *testing.T) {
	ledger := testLedger(t)

	_, err := ledger.CreateEntry(entry("zero", A(0)), false)
	var usage UsageError
	assert.ErrorAs(t, err, &usage, "zero amount must be rejected")

	var ref *ReferenceError
	e := entry("x", A(10))
	e.Account = "nope"
	_, err = ledger.CreateEntry(e, false)
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "account", ref.Kind)

	e = entry("x", A(10))
	e.Category = "nope"
	_, err = ledger.CreateEntry(e, false)
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "category", ref.Kind)

	// Nothing was written along the way.
	_, err = ledger.Entry("x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDuplicateAccountWarns(t *testing.T) {
	ledger := testLedger(t)

	res, err := ledger.CreateAccount(Account{Name: "checking", Balance: A(7)})
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "account")
	assert.Contains(t, res.Warnings[0], "checking")

	a, err := ledger.Account("checking")
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(A(7)), "duplicate create overwrites the balance")
}

func TestDeleteEntryKeepsBalance(t *testing.T) {
	ledger := testLedger(t)

	_, err := ledger.CreateEntry(entry("salary", A(2000)), false)
	require.NoError(t, err)
	require.NoError(t, ledger.DeleteEntry("salary"))

	_, err = ledger.Entry("salary")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an entry records nothing in the balance; the adjustment made
	// at creation time stands.
	a, err := ledger.Account("checking")
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(A(2100)))
}

func TestDeleteMissingRecords(t *testing.T) {
	ledger := testLedger(t)

	assert.ErrorIs(t, ledger.DeleteAccount("nope"), ErrNotFound)
	assert.ErrorIs(t, ledger.DeleteCategory("nope"), ErrNotFound)
	assert.ErrorIs(t, ledger.DeleteEntry("nope"), ErrNotFound)
}

func TestDeleteAccountCascadeThroughLedger(t *testing.T) {
	ledger := testLedger(t)
	_, err := ledger.CreateEntry(entry("rent", A(-1200)), false)
	require.NoError(t, err)

	require.NoError(t, ledger.DeleteAccount("checking"))

	entries, err := ledger.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
