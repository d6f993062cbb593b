package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flush-planner/internal/model"
)

var favoriteCmd = &cobra.Command{
	Use:     "favorite",
	Aliases: []string{"fav"},
	Short:   "Manage reusable task templates",
}

var favoriteAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Save a new template",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		startTime, endTime, importance, err := scheduleFlags(cmd)
		if err != nil {
			return err
		}

		favorite, err := a.favorites.Add(ctx, strings.Join(args, " "), startTime, endTime, importance)
		if err != nil {
			return err
		}

		fmt.Printf("Saved favorite %s %q\n", shortID(favorite.ID), favorite.Text)
		return nil
	}),
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show saved templates",
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		favorites, err := a.favorites.List(ctx)
		if err != nil {
			return err
		}
		if len(favorites) == 0 {
			fmt.Println(mutedStyle.Render("No favorites saved."))
			return nil
		}
		for _, favorite := range favorites {
			fmt.Printf("%s  %s  %s %s\n",
				mutedStyle.Render(shortID(favorite.ID)),
				textStyle.Render(favorite.Text),
				timeStyle.Render(formatSlot(favorite.StartTime, favorite.EndTime)),
				warningStyle.Render(formatImportance(favorite.Importance)))
		}
		return nil
	}),
}

var favoriteRmCmd = &cobra.Command{
	Use:   "rm <favorite-id>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		favorite, err := resolveFavorite(ctx, a, args[0])
		if err != nil {
			return err
		}
		if err := a.favorites.Remove(ctx, favorite.ID); err != nil {
			return err
		}
		fmt.Printf("Removed favorite %q\n", favorite.Text)
		return nil
	}),
}

var favoriteUseCmd = &cobra.Command{
	Use:   "use <favorite-id>",
	Short: "Stamp a new task from a template",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		favorite, err := resolveFavorite(ctx, a, args[0])
		if err != nil {
			return err
		}
		task, err := a.favorites.Use(ctx, favorite.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s\n", taskLine(task, false))
		return nil
	}),
}

func resolveFavorite(ctx context.Context, a *app, ref string) (model.FavoriteTask, error) {
	favorites, err := a.favorites.List(ctx)
	if err != nil {
		return model.FavoriteTask{}, err
	}
	var matches []model.FavoriteTask
	for _, favorite := range favorites {
		if favorite.ID == ref {
			return favorite, nil
		}
		if strings.HasPrefix(favorite.ID, ref) {
			matches = append(matches, favorite)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.FavoriteTask{}, fmt.Errorf("no favorite matches %q", ref)
	default:
		return model.FavoriteTask{}, fmt.Errorf("%q is ambiguous, %d favorites match", ref, len(matches))
	}
}

func init() {
	addScheduleFlags(favoriteAddCmd)
	favoriteCmd.AddCommand(favoriteAddCmd)
	favoriteCmd.AddCommand(favoriteListCmd)
	favoriteCmd.AddCommand(favoriteRmCmd)
	favoriteCmd.AddCommand(favoriteUseCmd)
}
