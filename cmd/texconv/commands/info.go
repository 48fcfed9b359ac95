// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/woozymasta/tex"
	"github.com/woozymasta/tex/internal/output"
)

// fileInfo is one row of the info listing.
type fileInfo struct {
	Path      string `json:"path" yaml:"path"`
	Container string `json:"container" yaml:"container"`
	Width     int    `json:"width" yaml:"width"`
	Height    int    `json:"height" yaml:"height"`
	MipMaps   int    `json:"mipmaps" yaml:"mipmaps"`
	Format    string `json:"format" yaml:"format"`
	BitCount  uint32 `json:"bit_count" yaml:"bit_count"`
	Repairs   string `json:"repairs" yaml:"repairs"`
	Decodable bool   `json:"decodable" yaml:"decodable"`
}

type infoList []fileInfo

func (l infoList) Headers() []string {
	return []string{"PATH", "CONTAINER", "SIZE", "MIPS", "FORMAT", "BITS", "REPAIRS"}
}

func (l infoList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, fi := range l {
		rows = append(rows, []string{
			fi.Path,
			fi.Container,
			strconv.Itoa(fi.Width) + "x" + strconv.Itoa(fi.Height),
			strconv.Itoa(fi.MipMaps),
			fi.Format,
			strconv.FormatUint(uint64(fi.BitCount), 10),
			fi.Repairs,
		})
	}
	return rows
}

func describeFile(path string) (fileInfo, error) {
	res, err := tex.LoadFile(path)
	if err != nil {
		return fileInfo{}, err
	}

	info, err := tex.Describe(res.Data)
	if err != nil {
		return fileInfo{}, err
	}

	fi := fileInfo{
		Path:      path,
		Container: "DDS",
		Width:     info.Width,
		Height:    info.Height,
		MipMaps:   info.MipMaps,
		Format:    info.Format,
		BitCount:  info.BitCount,
		Repairs:   "none",
		Decodable: info.Decodable,
	}
	if res.Unwrapped() {
		fi.Container = "TEX " + res.Container.Version.String()
		fi.Repairs = res.Repairs.String()
	}

	return fi, nil
}

func newInfoCmd(_ *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>...",
		Short: "Show container and DDS header details",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatName, _ := cmd.Flags().GetString("output")
			format, err := output.ParseFormat(formatName)
			if err != nil {
				return err
			}

			list := make(infoList, 0, len(args))
			for _, path := range args {
				fi, err := describeFile(path)
				if err != nil {
					return err
				}
				list = append(list, fi)
			}

			return output.Print(cmd.OutOrStdout(), format, list)
		},
	}

	cmd.Flags().StringP("output", "o", "table", "Output format (table|json|yaml)")

	return cmd
}
