package db

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var referenceClause = regexp.MustCompile(`REFERENCES\s+(\w+)\(id\)\s+ON DELETE\s+(RESTRICT|CASCADE|SET NULL)`)

// Brokers, developments and suppliers must never be removed while sales,
// orders or tasks still point at them; only owned children cascade.
func TestForeignKeyDeleteRules(t *testing.T) {
	restrictOnly := map[string]bool{
		"brokers":      true,
		"developments": true,
		"suppliers":    true,
	}

	found := map[string]int{}
	for _, statement := range migrationStatements {
		for _, match := range referenceClause.FindAllStringSubmatch(statement, -1) {
			parent, action := match[1], match[2]
			found[parent]++
			if restrictOnly[parent] {
				assert.Equal(t, "RESTRICT", action, "references to %s must block deletion", parent)
			}
		}
	}

	assert.Equal(t, 3, found["developments"], "sales, orders and tasks reference developments")
	assert.Equal(t, 1, found["brokers"])
	assert.Equal(t, 1, found["suppliers"])
}

func TestOwnedChildrenCascade(t *testing.T) {
	all := strings.Join(migrationStatements, "\n")
	assert.Contains(t, all, "REFERENCES sales(id) ON DELETE CASCADE")
	assert.Contains(t, all, "REFERENCES purchase_orders(id) ON DELETE CASCADE")
	assert.Contains(t, all, "REFERENCES planning_categories(id) ON DELETE SET NULL")
}
