package generator

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

var phonePattern = regexp.MustCompile(`^09\d{8}$`)

func testGenerator(t *testing.T, customers, sellers int, seed int64) *Generator {
	t.Helper()
	return NewGenerator(Config{
		DataDir:      t.TempDir(),
		NumCustomers: customers,
		NumSellers:   sellers,
	}, seed, utils.NewNopLogger())
}

func TestGenerateCustomersFormats(t *testing.T) {
	g := testGenerator(t, 500, 0, 1)
	customers := g.GenerateCustomers()
	require.Len(t, customers, 500)

	seen := make(map[string]bool)
	for _, c := range customers {
		assert.False(t, seen[c.CustomerID], "duplicate customer id %s", c.CustomerID)
		seen[c.CustomerID] = true

		assert.Regexp(t, `^KH\d{6}$`, c.CustomerID)
		assert.True(t, phonePattern.MatchString(c.Phone), "phone %q", c.Phone)
		assert.True(t, strings.HasSuffix(c.Email, "@customer.tgdd.vn"), "email %q", c.Email)
		assert.NotEmpty(t, c.City)
		assert.NotEmpty(t, c.Region)
		assert.False(t, c.CreatedDate.IsZero())
	}
}

func TestGenerateSellersFormats(t *testing.T) {
	g := testGenerator(t, 0, 100, 2)
	sellers := g.GenerateSellers()
	require.Len(t, sellers, 100)

	for _, s := range sellers {
		assert.Regexp(t, `^seller_\d{3}$`, s.SellerID)
		assert.True(t, strings.HasSuffix(s.Email, "@thegioididong.com"), "email %q", s.Email)
		assert.Regexp(t, `^\d{6}$`, s.ZipCodePrefix)
		switch s.State {
		case "Hanoi":
			assert.True(t, strings.HasPrefix(s.ZipCodePrefix, "1"))
		case "HCMC":
			assert.True(t, strings.HasPrefix(s.ZipCodePrefix, "7"))
		}
	}
}

// Tier frequencies over a large sample must converge to the configured
// weights within a few percentage points.
func TestCustomerTierDistribution(t *testing.T) {
	const n = 20000
	g := testGenerator(t, n, 0, 3)
	customers := g.GenerateCustomers()

	counts := make(map[string]int)
	for _, c := range customers {
		counts[c.Tier]++
	}

	expected := map[string]float64{
		"Silver":   0.45,
		"Gold":     0.30,
		"Platinum": 0.15,
		"Diamond":  0.08,
		"VIP":      0.02,
	}
	for tier, want := range expected {
		got := float64(counts[tier]) / n
		assert.InDelta(t, want, got, 0.02, "tier %s", tier)
	}
}

func TestGeneratorDeterministicUnderSeed(t *testing.T) {
	a := NewGenerator(Config{DataDir: t.TempDir(), NumCustomers: 50}, 99, utils.NewNopLogger()).GenerateCustomers()
	b := NewGenerator(Config{DataDir: t.TempDir(), NumCustomers: 50}, 99, utils.NewNopLogger()).GenerateCustomers()

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].Phone, b[i].Phone)
		assert.Equal(t, a[i].City, b[i].City)
		assert.Equal(t, a[i].Tier, b[i].Tier)
	}
}

func TestRunWritesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "raw")

	g := NewGenerator(Config{
		DataDir:      dataDir,
		NumCustomers: 10,
		NumSellers:   5,
	}, 4, utils.NewNopLogger())
	require.NoError(t, g.Run())

	for _, path := range []string{
		filepath.Join(dataDir, "customers.csv"),
		filepath.Join(dataDir, "sellers.csv"),
		filepath.Join(dir, "data_dictionary.txt"),
	} {
		info, err := os.Stat(path)
		require.NoError(t, err, "expected %s", path)
		assert.Greater(t, info.Size(), int64(0))
	}

	dict, err := os.ReadFile(filepath.Join(dir, "data_dictionary.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(dict), "customers.csv")
	assert.Contains(t, string(dict), "sellers.csv")
}
