// ABOUTME: Add/edit product form as a bubbletea model
// ABOUTME: Two huh steps with a progress indicator; saves through the REST client

package productform

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/mocha-admin/internal/client"
	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/route"
	"github.com/markalston/mocha-admin/internal/tui/icons"
	"github.com/markalston/mocha-admin/internal/tui/nav"
	"github.com/markalston/mocha-admin/internal/tui/styles"
	"github.com/markalston/mocha-admin/internal/tui/widgets"
)

type productLoadedMsg struct {
	product *models.Product
	err     error
}

type savedMsg struct {
	product *models.Product
	err     error
}

// Step names for progress indicator
var stepNames = []string{"Details", "Pricing & Media"}

var typeOptions = []huh.Option[string]{
	huh.NewOption("Coffee Bag", models.ProductTypeCoffeeBag),
	huh.NewOption("Coffee Cup", models.ProductTypeCoffeeCup),
	huh.NewOption("Free Coffee", models.ProductTypeFreeCoffee),
}

// Form manages the add/edit product flow
type Form struct {
	api   *client.Client
	id    int // 0 when adding
	form  *huh.Form
	step  int
	width int

	loading bool
	saving  bool
	err     error
	stock   int

	// Form field values (strings for huh)
	name          string
	productType   string
	description   string
	price         string
	originalPrice string
	image         string
	features      string
	maxClaims     string
}

// New creates a form for a new product
func New(api *client.Client) *Form {
	f := &Form{
		api:         api,
		step:        1,
		productType: models.ProductTypeCoffeeBag,
		price:       "0",
	}
	f.form = f.createStep1Form()
	return f
}

// NewEdit creates a form that loads product id before editing it
func NewEdit(api *client.Client, id int) *Form {
	f := New(api)
	f.id = id
	f.loading = true
	return f
}

// Editing reports whether the form updates an existing product
func (f *Form) Editing() bool {
	return f.id != 0
}

func (f *Form) fill(p models.Product) {
	f.name = p.Name
	f.productType = p.Type
	f.description = p.Description
	f.price = strconv.FormatFloat(p.Price, 'f', -1, 64)
	f.originalPrice = ""
	if p.OriginalPrice > 0 {
		f.originalPrice = strconv.FormatFloat(p.OriginalPrice, 'f', -1, 64)
	}
	f.image = p.Image
	f.features = strings.Join(p.Features, "\n")
	f.maxClaims = ""
	if p.MaxClaims != nil {
		f.maxClaims = strconv.Itoa(*p.MaxClaims)
	}
	f.stock = p.Stock
}

func (f *Form) createStep1Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("e.g., Ethiopian Yirgacheffe").
				CharLimit(80).
				Value(&f.name).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Type").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(typeOptions...).
				Value(&f.productType),
			huh.NewText().
				Title("Description").
				CharLimit(500).
				Lines(3).
				Value(&f.description).
				Validate(validateRequired),
		).Title("Step 1: Details").
			Description("What are you selling?"),
	).WithTheme(styles.FormTheme())
}

func (f *Form) createStep2Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Price (USD)").
				Placeholder("e.g., 24.99").
				Value(&f.price).
				Validate(validatePrice),
			huh.NewInput().
				Title("Original price").
				Description("Optional; shown struck through when higher than the price").
				Value(&f.originalPrice).
				Validate(validateOptionalPrice),
			huh.NewInput().
				Title("Image").
				Description("Uploaded image public ID or URL").
				Value(&f.image).
				Validate(validateRequired),
			huh.NewText().
				Title("Features").
				Description("One per line").
				Lines(3).
				Value(&f.features),
			huh.NewInput().
				Title("Max claims").
				Description("Optional; limits redemptions of free coffee NFTs").
				Value(&f.maxClaims).
				Validate(validateOptionalCount),
		).Title("Step 2: Pricing & Media").
			Description("Set the price and how the product looks"),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	if f.loading {
		api, id := f.api, f.id
		return func() tea.Msg {
			p, err := api.Product(context.Background(), id)
			return productLoadedMsg{product: p, err: err}
		}
	}
	return f.form.Init()
}

// SetSize sets the form width for proper rendering
func (f *Form) SetSize(width, _ int) {
	f.width = width
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case productLoadedMsg:
		f.loading = false
		if msg.err != nil {
			f.err = msg.err
			return f, nav.CheckAuth(msg.err)
		}
		f.fill(*msg.product)
		f.step = 1
		f.form = f.createStep1Form()
		return f, f.form.Init()

	case savedMsg:
		f.saving = false
		if msg.err != nil {
			f.err = msg.err
			f.step = 1
			f.form = f.createStep1Form()
			return f, tea.Batch(nav.CheckAuth(msg.err), f.form.Init())
		}
		return f, nav.Go(route.Products)

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return f, nav.Go(route.Products)
		}
	}

	if f.loading || f.saving || f.form == nil {
		return f, nil
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		return f.advanceStep()
	}
	return f, cmd
}

func (f *Form) advanceStep() (tea.Model, tea.Cmd) {
	switch f.step {
	case 1:
		f.step = 2
		f.form = f.createStep2Form()
		return f, f.form.Init()
	default:
		return f, f.submit()
	}
}

// Input builds the request body from the field values
func (f *Form) Input() (models.ProductInput, error) {
	in := models.ProductInput{
		Name:        strings.TrimSpace(f.name),
		Type:        f.productType,
		Description: strings.TrimSpace(f.description),
		Image:       strings.TrimSpace(f.image),
	}

	var err error
	if in.Price, err = strconv.ParseFloat(strings.TrimSpace(f.price), 64); err != nil {
		return in, fmt.Errorf("price must be a number")
	}
	if s := strings.TrimSpace(f.originalPrice); s != "" {
		if in.OriginalPrice, err = strconv.ParseFloat(s, 64); err != nil {
			return in, fmt.Errorf("original price must be a number")
		}
	}
	if s := strings.TrimSpace(f.maxClaims); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return in, fmt.Errorf("max claims must be a whole number")
		}
		in.MaxClaims = &n
	}
	for _, line := range strings.Split(f.features, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			in.Features = append(in.Features, line)
		}
	}
	return in, in.Validate()
}

func (f *Form) submit() tea.Cmd {
	in, err := f.Input()
	if err != nil {
		f.err = err
		f.step = 1
		f.form = f.createStep1Form()
		return f.form.Init()
	}

	f.err = nil
	f.saving = true
	api, id := f.api, f.id
	return func() tea.Msg {
		var p *models.Product
		var err error
		if id != 0 {
			p, err = api.UpdateProduct(context.Background(), id, in)
		} else {
			p, err = api.CreateProduct(context.Background(), in)
		}
		return savedMsg{product: p, err: err}
	}
}

// View implements tea.Model
func (f *Form) View() string {
	var sb strings.Builder

	title := icons.Add.String() + " Add Product"
	if f.Editing() {
		title = icons.Edit.String() + " Edit Product"
	}
	sb.WriteString(styles.Title.Render(title))
	if f.Editing() && !f.loading && f.err == nil {
		sb.WriteString("  " + widgets.StockBadge(models.StockStatus(f.stock)))
	}
	sb.WriteString("\n")

	switch {
	case f.loading:
		sb.WriteString(styles.Subtitle.Render("Loading product..."))
		return sb.String()
	case f.saving:
		sb.WriteString(styles.Subtitle.Render("Saving..."))
		return sb.String()
	}

	if f.err != nil {
		sb.WriteString(styles.StatusCritical.Render("Error: " + f.err.Error()))
		sb.WriteString("\n\n")
	}

	sb.WriteString(f.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(f.form.View())
	return sb.String()
}

// renderProgress renders the step progress indicator
func (f *Form) renderProgress() string {
	width := max(f.width-1, 60)

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		switch {
		case stepNum < f.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		case stepNum == f.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		default:
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}
	stepsLine := strings.Join(steps, "    ")

	// "│  " + bar + " │"
	barWidth := width - 5
	filledWidth := (f.step * barWidth) / len(stepNames)
	progressBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Render(strings.Repeat("─", barWidth-filledWidth))

	label := "Progress"
	topBorder := "┌─ " + titleStyle.Render(label) + " " + strings.Repeat("─", max(0, width-5-lipgloss.Width(label))) + "┐"
	stepsLinePadded := "│ " + stepsLine + strings.Repeat(" ", max(0, width-4-lipgloss.Width(stepsLine))) + " │"
	progressLine := "│  " + progressBar + " │"
	bottomBorder := "└" + strings.Repeat("─", width-2) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsLinePadded,
		progressLine,
		bottomBorder,
	}, "\n"))
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validatePrice(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}

func validateOptionalPrice(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validatePrice(s)
}

func validateOptionalCount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}
