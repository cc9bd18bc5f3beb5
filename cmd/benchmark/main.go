package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/cellwire/cellwire/cells"
	"github.com/cespare/xxhash/v2"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	widthsKey = "widths"
	depthsKey = "depths"
	itersKey  = "iters"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure synchronous propagation latency over cell/view graphs",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:  widthsKey,
				Usage: "Number of parallel view chains per graph",
				Value: []int64{1, 10, 100, 1_000},
			},
			&cli.IntSliceFlag{
				Name:  depthsKey,
				Usage: "Number of mapped views per chain",
				Value: []int64{1, 10, 100},
			},
			&cli.IntFlag{
				Name:  itersKey,
				Usage: "Writes measured per graph shape",
				Value: 100,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	widths := cmd.IntSlice(widthsKey)
	depths := cmd.IntSlice(depthsKey)
	iters := int(cmd.Int(itersKey))

	log.Print("warming up")
	propagate(10, 10, 10)

	tbl := table.NewWriter()
	tbl.SetTitle("Cell Propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"graph", "avg", "min", "p75", "p99", "max", "digest"})

	for _, w := range widths {
		for _, d := range depths {
			calc, digest := propagate(int(w), int(d), iters)
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate %d * %d", w, d),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					fmt.Sprintf("%016x", digest),
				},
			})
		}
	}

	tbl.Render()
	return nil
}

// propagate builds width parallel chains of depth mapped views over one
// source cell, subscribes a terminal observer per chain, then measures the
// latency of each equality-accepted write. Every observed value is folded
// into an xxhash digest so runs can be compared for delivery correctness,
// not just speed.
func propagate(width, depth, iters int) (*tachymeter.Metrics, uint64) {
	tach := tachymeter.New(&tachymeter.Config{Size: iters})
	digest := xxhash.New()

	src := cells.NewCell(1)
	terminals := make([]cells.View[int], 0, width)
	bag := cells.NewBag()
	defer bag.Dispose()

	for i := 0; i < width; i++ {
		var last cells.View[int] = src
		for j := 0; j < depth; j++ {
			last = cells.Map(last, cells.Observed, func(v int) int {
				return v + 1
			})
		}
		terminal := last
		terminals = append(terminals, terminal)
		bag.Add(cells.OnRefresh(terminal, func() {
			digest.WriteString(strconv.Itoa(terminal.Value()))
		}))
	}

	for i := 0; i < iters; i++ {
		start := time.Now()
		src.Set(src.Value() + 1)
		tach.AddTime(time.Since(start))
	}

	return tach.Calc(), digest.Sum64()
}
