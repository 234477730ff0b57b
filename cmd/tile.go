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

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tuw-geo/equi7go/grid"
)

// tileCmd represents the tile command
var tileCmd = &cobra.Command{
	Use:   "tile [lon] [lat]",
	Short: "Name the tile containing a geographic point",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		lon, errLon := strconv.ParseFloat(args[0], 64)
		lat, errLat := strconv.ParseFloat(args[1], 64)
		if errLon != nil || errLat != nil {
			log.Fatalln("tile wants two numeric arguments: lon lat")
		}
		g, err := grid.New(optSampling)
		if err != nil {
			log.Fatalln(err)
		}
		t, err := g.TileFromLonLat(lon, lat)
		if err != nil {
			log.Fatalln(err)
		}
		ext := t.Extent()
		fmt.Println(t.Name())
		fmt.Printf("zone=%s edge=%sm pixels=%dx%d extent=[%.0f %.0f %.0f %.0f]\n",
			t.Zone, humanize.Comma(int64(t.Edge())), t.Size(), t.Size(),
			ext.Min[0], ext.Min[1], ext.Max[0], ext.Max[1])
	},
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [tilename]",
	Short: "Decode a long-form tilename",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		t, err := grid.DecodeTilename(args[0])
		if err != nil {
			log.Fatalln(err)
		}
		ext := t.Extent()
		fmt.Printf("zone=%s sampling=%dm tiletype=%s extent=[%.0f %.0f %.0f %.0f]\n",
			t.Zone, t.Sampling, t.Type,
			ext.Min[0], ext.Min[1], ext.Max[0], ext.Max[1])
	},
}

func init() {
	rootCmd.AddCommand(tileCmd)
	rootCmd.AddCommand(decodeCmd)
}
