package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/drawsteel-importer/internal/handlers/importer/v1alpha1"
)

var (
	importMalice string
	importFolder string
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a stat block file into the server's store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readFile(args[0])
		if err != nil {
			return err
		}
		malice, err := readFile(importMalice)
		if err != nil {
			return err
		}

		var resp v1alpha1.ImportMonsterResponse
		err = call(cmd, v1alpha1.MethodImportMonster, &v1alpha1.ImportMonsterRequest{
			Text:       text,
			MaliceText: malice,
			Folder:     importFolder,
		}, &resp)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Imported %s as %s (folder %s, %d items)\n",
			resp.Actor.Name, resp.Actor.ID, resp.Actor.Folder, len(resp.Actor.Items))
		for _, n := range resp.Notices {
			fmt.Fprintf(out, "  notice: %s\n", n)
		}
		return nil
	},
}

var getActorCmd = &cobra.Command{
	Use:   "get-actor [id]",
	Short: "Print a stored actor as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp v1alpha1.ActorResponse
		if err := call(cmd, v1alpha1.MethodGetActor, &v1alpha1.GetActorRequest{ID: args[0]}, &resp); err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), resp.Actor)
	},
}

var listActorsCmd = &cobra.Command{
	Use:   "list-actors [folder]",
	Short: "List stored actors of a folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &v1alpha1.ListActorsRequest{}
		if len(args) == 1 {
			req.Folder = args[0]
		}

		var resp v1alpha1.ListActorsResponse
		if err := call(cmd, v1alpha1.MethodListActors, req, &resp); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, a := range resp.Actors {
			fmt.Fprintf(out, "%s  %-30s level %d %s\n", a.ID, a.Name, a.System.Monster.Level, a.System.Monster.Role)
		}
		fmt.Fprintf(out, "%d actors\n", len(resp.Actors))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importMalice, "malice", "", "malice ability text file")
	importCmd.Flags().StringVar(&importFolder, "folder", "", "actor folder")
}
