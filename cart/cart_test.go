package cart

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"smart-table-api/menu"
)

func item(name string, price int64) menu.Item {
	return menu.Item{Name: name, Price: decimal.NewFromInt(price)}
}

func TestCartAdd(t *testing.T) {
	c := New()
	c.Add(item("Tea", 20))
	c.Add(item("Tea", 20))
	c.Add(item("Samosa", 15))

	snap := c.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(snap))
	}
	if snap["Tea"].Quantity != 2 {
		t.Errorf("expected Tea quantity 2, got %d", snap["Tea"].Quantity)
	}
	if !snap["Tea"].Price.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected Tea price 20, got %s", snap["Tea"].Price)
	}
	if !c.Total().Equal(decimal.NewFromInt(55)) {
		t.Errorf("expected total 55, got %s", c.Total())
	}
}

func TestCartAddKeepsSnapshotPrice(t *testing.T) {
	c := New()
	c.Add(item("Tea", 20))
	// Price changes between adds keep the add-time snapshot
	c.Add(item("Tea", 25))

	snap := c.Snapshot()
	if !snap["Tea"].Price.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected snapshot price 20, got %s", snap["Tea"].Price)
	}
	if snap["Tea"].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", snap["Tea"].Quantity)
	}
}

func TestCartRemove(t *testing.T) {
	t.Run("decrements and deletes at zero", func(t *testing.T) {
		c := New()
		c.Add(item("Tea", 20))
		c.Add(item("Tea", 20))

		c.Remove("Tea")
		if c.Snapshot()["Tea"].Quantity != 1 {
			t.Fatalf("expected quantity 1 after one remove")
		}

		c.Remove("Tea")
		if _, ok := c.Snapshot()["Tea"]; ok {
			t.Fatal("line should be deleted when quantity reaches 0")
		}
		if !c.Empty() {
			t.Fatal("cart should be empty")
		}
	})

	t.Run("absent name is a no-op", func(t *testing.T) {
		c := New()
		c.Add(item("Tea", 20))
		c.Remove("Coffee")
		if !c.Total().Equal(decimal.NewFromInt(20)) {
			t.Errorf("expected total unchanged at 20, got %s", c.Total())
		}
	})
}

func TestCartTotalEmpty(t *testing.T) {
	c := New()
	if !c.Total().Equal(decimal.Zero) {
		t.Errorf("empty cart total should be 0, got %s", c.Total())
	}
}

func TestCartClear(t *testing.T) {
	c := New()
	c.Add(item("Tea", 20))
	c.Clear()
	if !c.Empty() {
		t.Fatal("cart should be empty after Clear")
	}
	if !c.Total().Equal(decimal.Zero) {
		t.Errorf("cleared cart total should be 0, got %s", c.Total())
	}
}

// For any sequence of adds and removes the total must equal the sum of
// price × quantity over the remaining lines, and no quantity may ever
// be observed as 0 or negative.
func TestCartRandomOpsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	items := []menu.Item{
		item("Tea", 20),
		item("Coffee", 30),
		item("Samosa", 15),
		item("Dosa", 60),
	}

	c := New()
	for i := 0; i < 1000; i++ {
		pick := items[rng.Intn(len(items))]
		if rng.Intn(3) == 0 {
			c.Remove(pick.Name)
		} else {
			c.Add(pick)
		}

		want := decimal.Zero
		for name, line := range c.Snapshot() {
			if line.Quantity < 1 {
				t.Fatalf("op %d: line %q has quantity %d", i, name, line.Quantity)
			}
			want = want.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		if !c.Total().Equal(want) {
			t.Fatalf("op %d: total %s != recomputed %s", i, c.Total(), want)
		}
	}
}

func TestSessionsIsolation(t *testing.T) {
	s := NewSessions()
	s.Add("1", item("Tea", 20))
	s.Add("2", item("Coffee", 30))

	if !s.Total("1").Equal(decimal.NewFromInt(20)) {
		t.Errorf("table 1 total wrong: %s", s.Total("1"))
	}
	if !s.Total("2").Equal(decimal.NewFromInt(30)) {
		t.Errorf("table 2 total wrong: %s", s.Total("2"))
	}

	s.Clear("1")
	if !s.Total("1").Equal(decimal.Zero) {
		t.Errorf("table 1 should be cleared")
	}
	if !s.Total("2").Equal(decimal.NewFromInt(30)) {
		t.Errorf("clearing table 1 must not touch table 2")
	}
}

func TestSessionsSnapshotIsCopy(t *testing.T) {
	s := NewSessions()
	s.Add("1", item("Tea", 20))

	snap := s.Snapshot("1")
	snap["Tea"] = Line{Price: decimal.NewFromInt(999), Quantity: 99}

	if !s.Total("1").Equal(decimal.NewFromInt(20)) {
		t.Error("mutating a snapshot must not affect the cart")
	}
}

func TestSessionsUnknownTableReads(t *testing.T) {
	s := NewSessions()
	if !s.Total("9").Equal(decimal.Zero) {
		t.Error("total of an absent session should be 0")
	}
	if len(s.Snapshot("9")) != 0 {
		t.Error("snapshot of an absent session should be empty")
	}
}
