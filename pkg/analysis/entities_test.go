package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athapong/contract-analyzer/pkg/lexicon"
)

func extract(text string) EntityBag {
	return ExtractEntities(lexicon.Default(), PatternBackend{}, text)
}

func TestExtractEntitiesPatternFamilies(t *testing.T) {
	text := "Signed on March 5, 2024 and effective 1 Apr 2024 (or 01-04-24). " +
		"Fees: INR 1,20,000.50, ₹5000, $ 2,500.00 and 3 crores. " +
		"Registered at BANGALORE, Karnataka with a branch in pune. " +
		"The term is 2 years with 90 days notice."

	bag := extract(text)

	assert.Equal(t, []string{"01-04-24", "March 5, 2024", "1 Apr 2024"}, bag.Dates)
	assert.Equal(t, []string{"INR 1,20,000.50", "₹5000", "$ 2,500.00", "3 crores"}, bag.Amounts)
	assert.Equal(t, []string{"Bangalore", "Pune", "Karnataka"}, bag.Locations)
	assert.Equal(t, []string{"2 years", "90 days"}, bag.Durations)
}

func TestExtractEntitiesAmountStopsBeforeTrailingComma(t *testing.T) {
	bag := extract("Rs. 50,000, payable now and Rs. 50,000 later")
	assert.Equal(t, []string{"Rs. 50,000"}, bag.Amounts)

	bag = extract("Deposit of $ 1,500, refundable.")
	assert.Equal(t, []string{"$ 1,500"}, bag.Amounts)
}

func TestExtractEntitiesOrganizationsAndPartyFallback(t *testing.T) {
	bag := extract("Supplier: Tata Steel Ltd. Buyer: Infosys Pvt Ltd. Agent: Globex Inc. Acme Widgets LLC")

	assert.Equal(t, []string{"Tata Steel Ltd", "Infosys Pvt Ltd", "Globex Inc", "Acme Widgets LLC"}, bag.Organizations)
	assert.Equal(t, []string{"Tata Steel Ltd", "Infosys Pvt Ltd"}, bag.Parties)
}

func TestExtractEntitiesPartiesFromBetween(t *testing.T) {
	bag := extract("This deed is made between Alpha Traders, a partnership firm, and the Buyer.")
	assert.Equal(t, []string{"Alpha Traders"}, bag.Parties)

	bag = extract("AGREEMENT BETWEEN Sharma Textiles and Mehta Exports for supply of cloth.")
	assert.Equal(t, []string{"Sharma Textiles", "Mehta Exports"}, bag.Parties)
}

func TestExtractEntitiesPersons(t *testing.T) {
	bag := extract("Witnessed by Mr. Ravi Kumar and Smt Lakshmi Iyer. Again, Mr. Ravi Kumar signs.")
	assert.Equal(t, []string{"Mr. Ravi Kumar", "Smt Lakshmi Iyer"}, bag.Persons)
}

func TestExtractEntitiesRegistrationNumbersAreRawCaptures(t *testing.T) {
	text := "CIN: U72900KA2015PTC082988\nGST: 29ABCDE1234F1Z5\nCIN:U72900KA2015PTC082988"

	bag := extract(text)
	assert.Equal(t, []string{"U72900KA2015PTC082988", "U72900KA2015PTC082988"}, bag.CIN)
	assert.Equal(t, []string{"29ABCDE1234F1Z5"}, bag.GST)
}

func TestExtractEntitiesCapsAndDeduplicates(t *testing.T) {
	names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel", "India", "Juliet", "Kilo", "Lima"}

	var sb strings.Builder
	for round := 0; round < 2; round++ {
		for i, name := range names {
			fmt.Fprintf(&sb, "%s Ltd pays Rs. %d on %d/%d/2024 within %d days. ", name, 1000+i, i+1, i+1, i+1)
		}
	}

	bag := extract(sb.String())
	for category, values := range bag.Categories() {
		assert.LessOrEqual(t, len(values), 10, category)
		seen := map[string]bool{}
		for _, v := range values {
			assert.False(t, seen[v], "%s has duplicate %q", category, v)
			seen[v] = true
		}
	}

	require.Len(t, bag.Organizations, 10)
	assert.Equal(t, "Alpha Ltd", bag.Organizations[0])
	assert.Equal(t, "Juliet Ltd", bag.Organizations[9])
	assert.Len(t, bag.Amounts, 10)
	assert.Len(t, bag.Dates, 10)
}

func TestExtractEntitiesOnlyScansLeadingText(t *testing.T) {
	text := strings.Repeat("a", entityScanLimit) + " Hidden Corp on 12/05/2024"
	bag := extract(text)
	assert.Empty(t, bag.Organizations)
	assert.Empty(t, bag.Dates)
}
