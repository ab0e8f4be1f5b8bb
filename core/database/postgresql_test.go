package database

import "testing"

// The shutdown path closes the wrapper directly, so the full method set has to
// stay on both the interface and the struct; this fails to compile otherwise.
func TestDatabaseSatisfiesInterface(t *testing.T) {
	var db IDatabase = &Database{}
	if _, ok := db.(*Database); !ok {
		t.Fatal("wrapper should back the database interface")
	}
}
