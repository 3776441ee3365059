// Command synthmeta inspects and edits Synthesia metadata files from the
// command line. It is a thin consumer of the library's public API; edits
// go through the same upsert and group operations the library exposes.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pianoware/synthmeta"
)

var (
	filePath string
	backup   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "synthmeta",
		Short: "Inspect and edit Synthesia metadata files",
	}

	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "metadata.synthesia", "metadata file path")
	rootCmd.PersistentFlags().BoolVar(&backup, "backup", false, "keep a .bak copy when writing")

	rootCmd.AddCommand(songsCmd())
	rootCmd.AddCommand(groupsCmd())
	rootCmd.AddCommand(addSongCmd())
	rootCmd.AddCommand(rmSongCmd())
	rootCmd.AddCommand(addGroupCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func save(doc *synthmeta.Document) error {
	opts := []synthmeta.SaveOption{synthmeta.WithValidation()}
	if backup {
		opts = append(opts, synthmeta.WithBackup(".bak"))
	}
	return doc.Save(opts...)
}

func songsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "songs",
		Short: "List songs in the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := synthmeta.Open(filePath)
			if err != nil {
				return err
			}

			count := 0
			for song := range doc.Songs() {
				line := song.UniqueID
				if song.Title != "" {
					line += "  " + song.Title
				}
				if song.Composer != "" {
					line += "  (" + song.Composer + ")"
				}
				if len(song.Tags) > 0 {
					line += "  [" + strings.Join(song.Tags, ", ") + "]"
				}
				fmt.Println(line)
				count++
			}
			fmt.Printf("%d song(s)\n", count)
			return nil
		},
	}
}

func groupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "Print the group tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := synthmeta.Open(filePath)
			if err != nil {
				return err
			}
			for group := range doc.Groups() {
				printGroup(group, 0)
			}
			return nil
		},
	}
}

func printGroup(g synthmeta.GroupEntry, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s (%d song(s))\n", indent, g.Name, len(g.Songs))
	for _, id := range g.Songs {
		fmt.Printf("%s  - %s\n", indent, id)
	}
	for _, child := range g.Groups {
		printGroup(child, depth+1)
	}
}

func addSongCmd() *cobra.Command {
	var (
		id       string
		title    string
		composer string
		tags     string
	)

	cmd := &cobra.Command{
		Use:   "add-song",
		Short: "Add or update a song record",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := synthmeta.Open(filePath)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
				doc = synthmeta.New()
				doc.Path = filePath
			}

			if id == "" {
				id = uuid.NewString()
			}

			entry := synthmeta.SongEntry{
				UniqueID: id,
				Title:    title,
				Composer: composer,
			}
			if tags != "" {
				entry.Tags = strings.Split(tags, ";")
			}

			if err := doc.AddSong(entry); err != nil {
				return err
			}
			if err := save(doc); err != nil {
				return err
			}
			fmt.Printf("Upserted song %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "song UniqueId (generated when omitted)")
	cmd.Flags().StringVar(&title, "title", "", "song title")
	cmd.Flags().StringVar(&composer, "composer", "", "composer")
	cmd.Flags().StringVar(&tags, "tags", "", "semicolon-separated tags")
	return cmd
}

func rmSongCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm-song <unique-id>",
		Short: "Remove a song record from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := synthmeta.Open(filePath)
			if err != nil {
				return err
			}
			doc.RemoveSong(args[0])
			if err := save(doc); err != nil {
				return err
			}
			fmt.Printf("Removed song %s\n", args[0])
			return nil
		},
	}
}

func addGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-group <name> [name...]",
		Short: "Create a group at the given path",
		Long: "Create a group at the given path. All path segments but the last\n" +
			"must already exist. The final name may come back suffixed when the\n" +
			"requested name is taken (\"Intro\" becomes \"Intro 2\").",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := synthmeta.Open(filePath)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
				doc = synthmeta.New()
				doc.Path = filePath
			}

			name, err := doc.AddGroup(synthmeta.GroupPath(args))
			if err != nil {
				return err
			}
			if err := save(doc); err != nil {
				return err
			}
			fmt.Printf("Created group %q\n", name)
			return nil
		},
	}
}
