// Command hashdemo is an interactive front end for the double-hashing
// product catalog. It drives the hashdemo.Store session and renders probe
// sequences, slot states, and the collision log.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	hashdemo "github.com/benx3/double-hash-demo"
	"github.com/benx3/double-hash-demo/blobstore"
	"github.com/benx3/double-hash-demo/model"
	"github.com/benx3/double-hash-demo/persistence"
)

func main() {
	var (
		capacity    = flag.Int("capacity", 11, "table capacity (fixed for the table's lifetime)")
		dataDir     = flag.String("data", "", "directory for snapshots (empty disables persistence)")
		snapshot    = flag.String("snapshot", persistence.DefaultSnapshotName, "snapshot blob name")
		compression = flag.String("compression", string(persistence.CompressionZstd), "snapshot compression: none, zstd, lz4")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := hashdemo.NewTextLogger(level)

	store, err := openStore(*capacity, *dataDir, *snapshot, *compression, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("double-hash product catalog: capacity %d, %d entries\n", store.Capacity(), store.Len())
	fmt.Println(`type "help" for commands`)

	repl(store)
}

func openStore(capacity int, dataDir, snapshot, compression string, logger *hashdemo.Logger) (*hashdemo.Store, error) {
	opts := []hashdemo.Option{
		hashdemo.WithLogger(logger),
	}

	if dataDir == "" {
		return hashdemo.New(capacity, opts...)
	}

	bs, err := blobstore.NewLocalStore(dataDir)
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		hashdemo.WithBlobStore(bs),
		hashdemo.WithSnapshotName(snapshot),
		hashdemo.WithCompression(persistence.Compression(compression)),
		hashdemo.WithAutoSave(true),
	)
	return hashdemo.Open(context.Background(), capacity, opts...)
}

func repl(store *hashdemo.Store) {
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, args := strings.ToLower(fields[0]), fields[1:]
		switch cmd {
		case "help", "?":
			printHelp()
		case "insert", "i":
			doInsert(ctx, store, args)
		case "search", "s":
			doSearch(store, args)
		case "delete", "d":
			doDelete(ctx, store, args)
		case "list", "ls":
			doList(store)
		case "table", "t":
			doTable(store)
		case "stats":
			doStats(store)
		case "log", "l":
			doLog(store, args)
		case "save":
			if err := store.Save(ctx); err != nil {
				fmt.Println("save failed:", err)
			} else {
				fmt.Println("snapshot saved")
			}
		case "quit", "exit", "q":
			return
		default:
			fmt.Printf("unknown command %q; type \"help\"\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Print(`commands:
  insert CODE NAME PRICE QTY [DESCRIPTION]   add a product
  search CODE                                look up a product
  delete CODE                                tombstone a product
  list                                       live products in slot order
  table                                      state of every slot
  stats                                      occupancy and collision stats
  log [N]                                    last N collision records (default all)
  save                                       write a snapshot now
  quit                                       exit
`)
}

func doInsert(ctx context.Context, store *hashdemo.Store, args []string) {
	if len(args) < 4 {
		fmt.Println("usage: insert CODE NAME PRICE QTY [DESCRIPTION]")
		return
	}
	price, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Println("bad price:", args[2])
		return
	}
	qty, err := strconv.Atoi(args[3])
	if err != nil {
		fmt.Println("bad quantity:", args[3])
		return
	}

	p := model.Product{
		Code:        args[0],
		Name:        args[1],
		Price:       price,
		Quantity:    qty,
		Description: strings.Join(args[4:], " "),
	}
	if err := p.Validate(); err != nil {
		fmt.Println("invalid product:", err)
		return
	}

	res, err := store.Insert(ctx, p)
	if err != nil {
		switch {
		case errors.Is(err, hashdemo.ErrTableFull):
			fmt.Println("table is full")
		case hashdemo.IsDuplicateKey(err):
			fmt.Printf("product code %s already exists\n", p.Code)
		default:
			fmt.Println("insert failed:", err)
		}
		return
	}

	fmt.Printf("inserted at position %d, probes %v\n", res.Position, res.ProbeSequence)
	if n := len(res.ProbeSequence) - 1; n > 0 {
		fmt.Printf("resolved %d collision(s) by double hashing\n", n)
	}
}

func doSearch(store *hashdemo.Store, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: search CODE")
		return
	}

	res, err := store.Search(args[0])
	if err != nil {
		if hashdemo.IsNotFound(err) {
			fmt.Printf("%s not found\n", args[0])
			return
		}
		fmt.Println("search failed:", err)
		return
	}

	fmt.Printf("%s at position %d, probes %v\n", res.Product, res.Position, res.ProbeSequence)
	if res.Product.Description != "" {
		fmt.Println("  description:", res.Product.Description)
	}
}

func doDelete(ctx context.Context, store *hashdemo.Store, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: delete CODE")
		return
	}

	res, err := store.Delete(ctx, args[0])
	if err != nil {
		if hashdemo.IsNotFound(err) {
			fmt.Printf("%s not found\n", args[0])
			return
		}
		fmt.Println("delete failed:", err)
		return
	}
	fmt.Printf("tombstoned position %d\n", res.Position)
}

func doList(store *hashdemo.Store) {
	entries := store.Entries()
	if len(entries) == 0 {
		fmt.Println("catalog is empty")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tCODE\tNAME\tPRICE\tQTY")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%d\n",
			e.Position, e.Product.Code, e.Product.Name, e.Product.Price, e.Product.Quantity)
	}
	w.Flush()
}

func doTable(store *hashdemo.Store) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tSTATE\tKEY")
	for _, s := range store.SlotStates() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.Index, s.Status, s.Key)
	}
	w.Flush()
}

func doStats(store *hashdemo.Store) {
	stats := store.Stats()
	fmt.Printf("capacity:           %d\n", stats.Capacity)
	fmt.Printf("occupied:           %d\n", stats.Occupied)
	fmt.Printf("tombstoned:         %d\n", stats.Tombstoned)
	fmt.Printf("empty:              %d\n", stats.Empty)
	fmt.Printf("load factor:        %.3f\n", stats.LoadFactor)
	fmt.Printf("lifetime collisions: %d\n", stats.Collisions)
	fmt.Printf("collision records:  %d\n", stats.LogLength)
}

func doLog(store *hashdemo.Store, args []string) {
	records := store.CollisionLog()
	if len(records) == 0 {
		fmt.Println("collision log is empty")
		return
	}

	n := len(records)
	if len(args) == 1 {
		if v, err := strconv.Atoi(args[0]); err == nil && v < n {
			n = v
		}
	}

	for _, rec := range records[len(records)-n:] {
		fmt.Printf("%s %q probes=%v collisions=%d\n", rec.Op, rec.Key, rec.ProbeSequence, rec.CollisionCount)
		fmt.Printf("  %s\n", rec.Resolution)
		calc := rec.Calculation
		fmt.Printf("  ascii sum %d; h1: %s; h2: %s\n", calc.ASCIISum, calc.H1Formula, calc.H2Formula)
		for _, step := range calc.Steps {
			status := string(step.Status)
			if step.OccupiedBy != "" {
				status += " by " + step.OccupiedBy
			}
			fmt.Printf("    attempt %d: %s  [%s]\n", step.Attempt, step.Formula, status)
		}
	}
}
