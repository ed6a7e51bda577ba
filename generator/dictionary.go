package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type dictionaryEntry struct {
	file        string
	description string
	columns     [][2]string
}

var dataDictionary = []dictionaryEntry{
	{
		file:        "customers.csv",
		description: "Vietnamese customer information with contact details",
		columns: [][2]string{
			{"customer_id", "Unique customer identifier (KH000000 format)"},
			{"customer_unique_id", "System-generated unique ID (UUID)"},
			{"customer_name", "Customer name (Vietnamese ASCII, no diacritics)"},
			{"customer_phone", "Vietnamese mobile phone (09xxxxxxxx format)"},
			{"customer_email", "Customer email (@customer.tgdd.vn domain)"},
			{"customer_city", "Customer city (Vietnamese cities in English)"},
			{"customer_state", "Customer state/province"},
			{"customer_region", "Geographic region (North, South, Central, Central Highlands)"},
			{"customer_tier", "Customer tier (Silver, Gold, Platinum, Diamond, VIP)"},
			{"is_active", "Customer account status (boolean)"},
			{"created_date", "Account creation timestamp (ISO format)"},
		},
	},
	{
		file:        "sellers.csv",
		description: "Vietnamese seller information for The Gioi Di Dong",
		columns: [][2]string{
			{"seller_id", "Unique seller identifier (seller_000 format)"},
			{"seller_name", "Seller name (Vietnamese ASCII, no diacritics)"},
			{"seller_email", "Seller email (@thegioididong.com domain)"},
			{"seller_phone", "Seller phone (Vietnamese mobile format)"},
			{"seller_zip_code_prefix", "Vietnamese postal code (6 digits)"},
			{"seller_city", "Seller city location"},
			{"seller_state", "Seller state/province"},
		},
	},
}

// WriteDataDictionary writes the human-readable data dictionary one directory
// above the raw data directory.
func (g *Generator) WriteDataDictionary() error {
	path := filepath.Join(filepath.Dir(g.cfg.DataDir), "data_dictionary.txt")

	var b strings.Builder
	b.WriteString("VIETNAMESE E-COMMERCE DATA DICTIONARY\n")
	b.WriteString("The Gioi Di Dong Analytics Platform\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, entry := range dataDictionary {
		b.WriteString(entry.file + "\n")
		b.WriteString(strings.Repeat("-", len(entry.file)) + "\n")
		b.WriteString(fmt.Sprintf("Description: %s\n\n", entry.description))
		b.WriteString("Columns:\n")
		for _, col := range entry.columns {
			b.WriteString(fmt.Sprintf("  %s: %s\n", col[0], col[1]))
		}
		b.WriteString("\n" + strings.Repeat("=", 50) + "\n\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write data dictionary: %w", err)
	}

	g.logger.Info("Created data dictionary: %s", path)
	return nil
}
