// Package components provides a theme-aware UI component library for terminal
// applications, centred on Field, a styled single-line text input.
//
// # Architecture
//
// The component system has three layers:
//
//  1. Theme Layer - Immutable theme definitions (colors, spacing, typography, field tokens)
//  2. Modifier Layer - StyleFunc transformations that apply theme data to styles
//  3. Component Layer - Composable UI elements that render to strings
//
// Themes are passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := field.ViewWithContext(ctx)
//
// # Fields
//
// A Field lays out up to five slots in a fixed order: leading addon, prefix
// icon, the text input, loading spinner, trailing addon.
//
//	field := components.NewField(components.FieldProps{
//		Icon:        "icon-search",
//		AddonBefore: components.NewBadge("https://"),
//		AddonAfter:  components.PrimaryButton("Go"),
//		Attrs:       components.FieldAttrs{Placeholder: "example.com"},
//	})
//
// Styling is computed by ResolveFieldStyles from the theme and the field's
// FieldFlags, and memoized per flag tuple by FieldStyleCache. Addons that
// implement Restylable are rendered with the addon-override style in place
// of their own; other renderables are drawn untouched.
//
// Fields are also bubbletea-friendly: Init, Update, Focus and Blur forward to
// the underlying bubbles text input and spinner.
//
// # Style Modifiers
//
// Components accept theme-aware style functions through WithAppliers:
//
//	badge := NewBadge("beta").WithAppliers(
//		Background(PaletteWarning),
//		PaddingX(SpacingSizeSmall),
//	)
//
// Available modifiers:
//   - Background(slot): Semantic background color with matching foreground
//   - Foreground(slot): Semantic text color
//   - Border(variant): Border style from theme
//   - Padding/PaddingX(size), MarginY(size): Spacing from theme scale
//   - Typography(variant): Typography preset from theme
package components
