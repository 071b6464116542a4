package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/inkball/ecs"
)

// EntityBrowser lists the entities of one pool and shows the selected one in
// an editable field inspector.
type EntityBrowser[T any] struct {
	Title string
	Pool  func() *ecs.Pool[T]

	// Describe renders the summary column. Defaults to %+v.
	Describe func(*T) string

	// Actions draws extra widgets for the selected entity, such as buttons.
	Actions func(id ecs.EntityId)

	selectedEntityId   ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

// NewEntityBrowser creates a browser over the pool returned by pool. The pool
// is looked up on every frame so that it may be replaced.
func NewEntityBrowser[T any](title string, maxEntitiesPerPage int, pool func() *ecs.Pool[T]) *EntityBrowser[T] {
	return &EntityBrowser[T]{
		Title:              title,
		Pool:               pool,
		maxEntitiesPerPage: max(1, maxEntitiesPerPage),
	}
}

func (eb *EntityBrowser[T]) describe(v *T) string {
	if eb.Describe != nil {
		return eb.Describe(v)
	}
	return fmt.Sprintf("%+v", *v)
}

// Filter returns the entities whose id or summary contains the filter text.
func (eb *EntityBrowser[T]) Filter(pool *ecs.Pool[T]) []ecs.EntityId {
	filterLower := strings.ToLower(eb.filterText)

	var ids []ecs.EntityId
	for id, v := range pool.Iter() {
		if filterLower != "" {
			idStr := fmt.Sprintf("%d:%d", id.Generation(), id.Index())
			if !strings.Contains(idStr, filterLower) && !strings.Contains(strings.ToLower(eb.describe(v)), filterLower) {
				continue
			}
		}
		ids = append(ids, id)
	}
	return ids
}

// SetFilter replaces the filter text and returns to the first page.
func (eb *EntityBrowser[T]) SetFilter(text string) {
	eb.filterText = text
	eb.currentPage = 0
}

// Page returns the slice of ids shown on the current page, clamping the page
// to the available range.
func (eb *EntityBrowser[T]) Page(ids []ecs.EntityId) []ecs.EntityId {
	totalPages := max(1, (len(ids)+eb.maxEntitiesPerPage-1)/eb.maxEntitiesPerPage)
	eb.currentPage = min(max(0, eb.currentPage), totalPages-1)

	start := eb.currentPage * eb.maxEntitiesPerPage
	end := min(start+eb.maxEntitiesPerPage, len(ids))
	return ids[start:end]
}

func (eb *EntityBrowser[T]) Select(id ecs.EntityId) {
	eb.selectedEntityId = id
}

func (eb *EntityBrowser[T]) Selected() ecs.EntityId {
	return eb.selectedEntityId
}

func (eb *EntityBrowser[T]) Render() {
	if !imgui.BeginV(eb.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	pool := eb.Pool()
	if pool == nil {
		imgui.Text("No entities")
		imgui.End()
		return
	}

	filter := eb.filterText
	imgui.InputTextWithHint("##search", "Search...", &filter, imgui.InputTextFlagsNone, nil)
	if filter != eb.filterText {
		eb.SetFilter(filter)
	}
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.SetFilter("")
	}

	filtered := eb.Filter(pool)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 2, tableFlags, imgui.NewVec2(0, 200), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()

		for _, id := range eb.Page(filtered) {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			label := fmt.Sprintf("%d:%d", id.Generation(), id.Index())
			if imgui.SelectableBoolV(label, eb.selectedEntityId == id, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = id
			}

			imgui.TableNextColumn()
			imgui.Text(eb.describe(pool.Get(id)))
		}

		imgui.EndTable()
	}

	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.Separator()
	if selected := pool.Get(eb.selectedEntityId); selected != nil {
		imgui.Text(fmt.Sprintf("Selected: %d:%d", eb.selectedEntityId.Generation(), eb.selectedEntityId.Index()))
		InspectValue(selected)
		if eb.Actions != nil {
			eb.Actions(eb.selectedEntityId)
		}
	} else {
		imgui.Text("No entity selected")
	}

	imgui.End()
}
