package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chrisdamba/foodbrowse/internal/cart"
	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu <restaurant-id>",
	Short: "Show a restaurant's offers and menu, optionally filling a cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustLoadConfig()
		ctx, cancel := signalContext()
		defer cancel()

		adds, _ := cmd.Flags().GetStringArray("add")
		asJSON, _ := cmd.Flags().GetBool("json")

		detail, err := newAdapter(cfg).FetchRestaurantDetail(ctx, args[0])
		if err != nil {
			return err
		}

		items := make(map[string]models.MenuItem)
		for _, category := range detail.Menu {
			for _, item := range category.Items {
				items[item.ID] = item
			}
		}
		var c []models.CartItem
		for _, spec := range adds {
			id, quantity, err := parseCartArg(spec)
			if err != nil {
				return err
			}
			item, ok := items[id]
			if !ok {
				return fmt.Errorf("no menu item %q at restaurant %s", id, detail.Restaurant.ID)
			}
			c = cart.ApplyCartEvent(c, item, quantity)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				models.RestaurantDetail
				Cart cart.Summary `json:"cart"`
			}{detail, cart.Summarize(c)})
		}
		printMenu(cmd.OutOrStdout(), detail, c)
		return nil
	},
}

func init() {
	menuCmd.Flags().StringArray("add", nil, "Set a cart quantity as item-id=quantity (repeatable)")
	menuCmd.Flags().Bool("json", false, "Print the detail and cart as JSON")
	rootCmd.AddCommand(menuCmd)
}

// parseCartArg reads "id=quantity"; a bare id means one.
func parseCartArg(s string) (string, int, error) {
	id, raw, found := strings.Cut(s, "=")
	id = strings.TrimSpace(id)
	if id == "" {
		return "", 0, fmt.Errorf("invalid --add %q: missing item id", s)
	}
	if !found {
		return id, 1, nil
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", 0, fmt.Errorf("invalid --add %q: %w", s, err)
	}
	return id, quantity, nil
}

func printMenu(out io.Writer, detail models.RestaurantDetail, c []models.CartItem) {
	r := detail.Restaurant
	fmt.Fprintf(out, "%s  (%.1f, %d min, %d for two)\n", r.Name, r.Rating, r.DeliveryTime, r.PriceForTwo)
	if len(r.Cuisine) > 0 {
		fmt.Fprintln(out, strings.Join(r.Cuisine, ", "))
	}
	if r.Address != "" {
		fmt.Fprintln(out, r.Address)
	}
	if detail.Notice != "" {
		fmt.Fprintf(out, "\n! %s\n", detail.Notice)
	}

	fmt.Fprintln(out, "\nOffers:")
	for _, offer := range detail.Offers {
		fmt.Fprintf(out, "  - %s\n", offer)
	}

	for _, category := range detail.Menu {
		fmt.Fprintf(out, "\n%s (%d)\n", category.Name, len(category.Items))
		for _, item := range category.Items {
			marker := "non-veg"
			if item.Veg {
				marker = "veg"
			}
			if item.Bestseller {
				marker += ", bestseller"
			}
			line := fmt.Sprintf("  [%s] %s  %d  (%s)", item.ID, item.Name, item.Price, marker)
			if q := cart.Quantity(c, item.ID); q > 0 {
				line += fmt.Sprintf("  x%d in cart", q)
			}
			fmt.Fprintln(out, line)
		}
	}

	if len(c) > 0 {
		fmt.Fprintf(out, "\nCart: %d item(s), subtotal %d\n", cart.ItemCount(c), cart.Subtotal(c))
	}
}
