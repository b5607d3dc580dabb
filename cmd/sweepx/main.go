// Command sweepx is a thin wrapper around the sweepline core: it reads
// a JSON list of segments and prints the JSON list of intersection
// records found by sweepline.FindIntersections. It performs no
// geometry of its own.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arcstride/sweepline"
	"github.com/urfave/cli/v3"
)

// wirePoint is the JSON encoding of a point: [x, y].
type wirePoint [2]float64

// wireSegment is the JSON encoding of a segment: a pair of points.
type wireSegment [2]wirePoint

// wireRecord is the JSON encoding of one intersection record.
type wireRecord struct {
	Point    wirePoint     `json:"point"`
	Segments []wireSegment `json:"segments"`
}

func main() {
	cmd := &cli.Command{
		Name:      "sweepx",
		Usage:     "Finds all pairwise intersections among a set of planar line segments",
		UsageText: "sweepx [--input <file>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Path to a JSON segment list; reads stdin if omitted",
				Aliases:  []string{"i"},
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	var in io.Reader = os.Stdin
	if path := cmd.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var wireSegs []wireSegment
	if err := json.NewDecoder(in).Decode(&wireSegs); err != nil {
		return fmt.Errorf("decode segments: %w", err)
	}

	segs := make([]*sweepline.Segment, len(wireSegs))
	for i, ws := range wireSegs {
		segs[i] = sweepline.NewSegment(
			sweepline.Point{X: ws[0][0], Y: ws[0][1]},
			sweepline.Point{X: ws[1][0], Y: ws[1][1]},
		)
	}

	records := sweepline.FindIntersections(segs)
	out := make([]wireRecord, len(records))
	for i, r := range records {
		wr := wireRecord{Point: wirePoint{r.Point.X, r.Point.Y}}
		for _, s := range r.Segments {
			wr.Segments = append(wr.Segments, wireSegment{
				{s.Upper.X, s.Upper.Y},
				{s.Lower.X, s.Lower.Y},
			})
		}
		out[i] = wr
	}

	b, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	fmt.Println(string(b))
	return nil
}
