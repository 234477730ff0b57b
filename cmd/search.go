/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/tuw-geo/equi7go/grid"
)

var optSearchBBox string
var optSearchPoints string
var optSearchCoverland bool

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "List tiles overlapping a region of interest",
	Long: `Searches the grid for tiles overlapping a region of interest and
prints their long-form names, one per line.

The region is a geographic bounding box (--bbox "xmin,ymin,xmax,ymax",
xmin > xmax wraps the antimeridian) or a set of points
(--points "lon,lat;lon,lat;..."). With --coverland, tiles touching no
land are dropped.

Examples:

  equi7 search --bbox "0,30,10,40" --coverland
  equi7 search --points "15.1,45.3;-90.9,-1.2"
`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		roi, err := searchROI()
		if err != nil {
			log.Fatalln(err)
		}
		g, err := grid.New(optSampling)
		if err != nil {
			log.Fatalln(err)
		}
		tiles, err := g.SearchTilesInROI(roi, optSearchCoverland)
		if err != nil {
			log.Fatalln(err)
		}
		for _, name := range tiles {
			fmt.Println(name)
		}
		slog.Info("Search done", "tiles", humanize.Comma(int64(len(tiles))))
	},
}

func searchROI() (grid.ROI, error) {
	switch {
	case optSearchBBox != "" && optSearchPoints != "":
		return grid.ROI{}, fmt.Errorf("--bbox and --points are mutually exclusive")
	case optSearchBBox != "":
		fields := strings.Split(optSearchBBox, ",")
		if len(fields) != 4 {
			return grid.ROI{}, fmt.Errorf("--bbox wants xmin,ymin,xmax,ymax")
		}
		var b [4]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return grid.ROI{}, fmt.Errorf("--bbox: %w", err)
			}
			b[i] = v
		}
		return grid.BBoxROI(b[0], b[1], b[2], b[3]), nil
	case optSearchPoints != "":
		var points []orb.Point
		for _, pair := range strings.Split(optSearchPoints, ";") {
			fields := strings.Split(pair, ",")
			if len(fields) != 2 {
				return grid.ROI{}, fmt.Errorf("--points wants lon,lat pairs separated by semicolons")
			}
			lon, errLon := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
			lat, errLat := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
			if errLon != nil || errLat != nil {
				return grid.ROI{}, fmt.Errorf("--points: bad pair %q", pair)
			}
			points = append(points, orb.Point{lon, lat})
		}
		return grid.PointsROI(points...), nil
	}
	return grid.ROI{}, fmt.Errorf("one of --bbox or --points is required")
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&optSearchBBox, "bbox", "", "geographic bounding box xmin,ymin,xmax,ymax")
	searchCmd.Flags().StringVar(&optSearchPoints, "points", "", "geographic points lon,lat;lon,lat;...")
	searchCmd.Flags().BoolVar(&optSearchCoverland, "coverland", false, "only tiles covering land")
}
