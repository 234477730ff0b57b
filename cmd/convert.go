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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tuw-geo/equi7go/grid"
	"github.com/tuw-geo/equi7go/zone"
)

var optConvertZone string
var optConvertInverse bool

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [a] [b]",
	Short: "Convert between geographic and grid coordinates",
	Long: `Converts lon/lat to projected x/y meters. The owning zone is found
automatically unless --zone forces one. With --inverse the arguments are
x y in meters and --zone is required.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		a, errA := strconv.ParseFloat(args[0], 64)
		b, errB := strconv.ParseFloat(args[1], 64)
		if errA != nil || errB != nil {
			log.Fatalln("convert wants two numeric arguments")
		}
		g, err := grid.New(optSampling)
		if err != nil {
			log.Fatalln(err)
		}

		if optConvertInverse {
			if optConvertZone == "" {
				log.Fatalln("--inverse requires --zone")
			}
			lon, lat, err := g.XYToLonLat(zone.ID(optConvertZone), a, b)
			if err != nil {
				log.Fatalln(err)
			}
			fmt.Printf("%s %.9f %.9f\n", optConvertZone, lon, lat)
			return
		}

		var id zone.ID
		var x, y float64
		if optConvertZone != "" {
			id = zone.ID(optConvertZone)
			x, y, err = g.LonLatToXYZone(id, a, b)
		} else {
			id, x, y, err = g.LonLatToXY(a, b)
		}
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("%s %.6f %.6f\n", id, x, y)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&optConvertZone, "zone", "", "force a zone (EU AF AS NA SA OC AN)")
	convertCmd.Flags().BoolVar(&optConvertInverse, "inverse", false, "convert x/y meters back to lon/lat")
}
