package hashdemo_test

import (
	"context"
	"fmt"
	"log"

	hashdemo "github.com/benx3/double-hash-demo"
	"github.com/benx3/double-hash-demo/model"
)

func Example() {
	ctx := context.Background()

	store, err := hashdemo.New(11)
	if err != nil {
		log.Fatal(err)
	}

	// "A1" sums to 114, so h1 = 114 mod 11 = 4.
	res, err := store.Insert(ctx, model.Product{Code: "A1", Name: "Widget", Price: 9.99, Quantity: 3})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("position:", res.Position)

	// "L1" sums to 125 and collides with "A1" on slot 4; its step size 1
	// resolves the collision at slot 5.
	res, err = store.Insert(ctx, model.Product{Code: "L1", Name: "Gadget", Price: 19.99, Quantity: 1})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("position:", res.Position)
	fmt.Println("probes:", res.ProbeSequence)
	fmt.Println("collision records:", len(store.CollisionLog()))

	// Output:
	// position: 4
	// position: 5
	// probes: [4 5]
	// collision records: 1
}
