package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cellwire/cellwire/cells"
	"github.com/cellwire/cellwire/stream"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	emissionsKey   = "emissions"
	subscribersKey = "subscribers"
	depthKey       = "depth"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_stream",
		Usage: "Measure stream bridge throughput: emitter in, view graph, subscribers out",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  emissionsKey,
				Usage: "Values pushed through the bridge per run",
				Value: 100_000,
			},
			&cli.IntSliceFlag{
				Name:  subscribersKey,
				Usage: "Outbound subscriber counts to test",
				Value: []int64{1, 10, 100},
			},
			&cli.IntSliceFlag{
				Name:  depthKey,
				Usage: "Mapped view chain depths to test",
				Value: []int64{1, 5, 25},
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	emissions := int(cmd.Int(emissionsKey))
	subCounts := cmd.IntSlice(subscribersKey)
	depths := cmd.IntSlice(depthKey)

	log.Print("starting stream bridge benchmark, please wait...")
	defer log.Print("finished stream bridge benchmark")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"subscribers", "depth", "emissions", "delivered", "time", "rate/s",
	})

	for _, subs := range subCounts {
		for _, depth := range depths {
			delivered, took := pump(emissions, int(subs), int(depth))
			rate := float64(delivered) / took.Seconds()
			table.Append([]string{
				humanize.Comma(subs),
				humanize.Comma(depth),
				humanize.Comma(int64(emissions)),
				humanize.Comma(delivered),
				took.Round(time.Microsecond).String(),
				humanize.Comma(int64(rate)),
			})
		}
	}

	table.Render()
	return nil
}

// pump drives emissions values through emitter → cell → mapped chain →
// outbound stream subscribers and reports total deliveries and wall time.
func pump(emissions, subscribers, depth int) (delivered int64, took time.Duration) {
	in := stream.NewEmitter[int]()
	view, handle := stream.IntoCell(0, in)

	var last cells.View[int] = view
	for i := 0; i < depth; i++ {
		last = cells.Map(last, cells.Observed, func(v int) int {
			return v + 1
		})
	}

	out := stream.FromView[int](last)
	bag := cells.NewBag(handle)
	for i := 0; i < subscribers; i++ {
		bag.Add(out.Subscribe(func(v int) {
			delivered++
		}))
	}
	defer bag.Dispose()

	start := time.Now()
	for i := 1; i <= emissions; i++ {
		in.Emit(i)
	}
	took = time.Since(start)

	want := int64(emissions) * int64(subscribers)
	if delivered != want {
		log.Printf("warning: delivered %s of %s notifications",
			humanize.Comma(delivered), humanize.Comma(want))
	}
	return delivered, took
}
