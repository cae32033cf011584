package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"kharcha"
)

type categoryCmd struct {
	add   bool
	rm    bool
	list  bool
	name  string
	icon  string
	color string
	cap   string
	order string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "manage spending categories" }
func (*categoryCmd) Usage() string {
	return `kha category [-list]
kha category -add -name <name> [-icon <icon>] [-color <hex>] [-cap <amount>]
kha category <id> [-name <name>] [-icon <icon>] [-color <hex>] [-cap <amount>]
kha category -rm <id>
kha category -order <id1,id2,...>

  Manages spending categories. A category with a cap shows up in the
  monthly budget report; set -cap 0 to remove the cap.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Create a new category.")
	f.BoolVar(&c.rm, "rm", false, "Remove the category with the given id.")
	f.BoolVar(&c.list, "list", false, "List categories.")
	f.StringVar(&c.name, "name", "", "Category name.")
	f.StringVar(&c.icon, "icon", "", "Category icon (an emoji).")
	f.StringVar(&c.color, "color", "", "Category color (hex).")
	f.StringVar(&c.cap, "cap", "", "Monthly spending cap, 0 to remove.")
	f.StringVar(&c.order, "order", "", "Comma-separated ids in the new display order.")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	switch {
	case c.add:
		return c.create(s)
	case c.order != "":
		return c.reorder(s)
	case f.NArg() == 1:
		id, err := kharcha.ParseID(f.Arg(0))
		if err != nil {
			return fail(err)
		}
		if c.rm {
			ok, err := s.DeleteCategory(id)
			if err != nil {
				return fail(err)
			}
			if !ok {
				return fail(fmt.Errorf("unknown category %s", id))
			}
			fmt.Println("Category removed. Its transactions show up as Unknown.")
			return subcommands.ExitSuccess
		}
		return c.edit(s, id)
	default:
		for _, cat := range s.Sections() {
			line := fmt.Sprintf("%s  %s %s", cat.ID, cat.Icon, cat.Name)
			if cat.Cap.IsPositive() {
				line += fmt.Sprintf("  cap %s", display(s).Money(cat.Cap))
			}
			fmt.Println(line)
		}
		return subcommands.ExitSuccess
	}
}

func (c *categoryCmd) reorder(s *kharcha.Store) subcommands.ExitStatus {
	var ids []kharcha.ID
	for _, part := range strings.Split(c.order, ",") {
		id, err := kharcha.ParseID(strings.TrimSpace(part))
		if err != nil {
			return fail(err)
		}
		ids = append(ids, id)
	}
	if err := s.Reorder(ids); err != nil {
		return fail(err)
	}
	fmt.Println("Display order updated")
	return subcommands.ExitSuccess
}

func (c *categoryCmd) create(s *kharcha.Store) subcommands.ExitStatus {
	cat := kharcha.Category{
		Type:  kharcha.Section,
		Name:  c.name,
		Icon:  c.icon,
		Color: c.color,
	}
	if c.cap != "" {
		cap, err := kharcha.ParseAmount(c.cap)
		if err != nil {
			return fail(err)
		}
		cat.Cap = cap
	}
	added, err := s.AddCategory(cat)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Created category %s (%s)\n", added.Name, added.ID)
	return subcommands.ExitSuccess
}

func (c *categoryCmd) edit(s *kharcha.Store, id kharcha.ID) subcommands.ExitStatus {
	cat := s.Category(id)
	if cat == nil || !cat.IsSection() {
		return fail(fmt.Errorf("unknown category %s", id))
	}

	if c.name != "" {
		cat.Name = c.name
	}
	if c.icon != "" {
		cat.Icon = c.icon
	}
	if c.color != "" {
		cat.Color = c.color
	}
	if c.cap != "" {
		cap, err := kharcha.ParseAmount(c.cap)
		if err != nil {
			return fail(err)
		}
		cat.Cap = cap
	}
	if err := s.UpdateCategory(*cat); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated %s\n", cat.Name)
	return subcommands.ExitSuccess
}
