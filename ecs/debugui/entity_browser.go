package debugui

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/snake/ecs"
)

// Source is a named set of live records the browser can list.
type Source struct {
	Name  string
	Items func() iter.Seq2[ecs.EntityId, any]
}

// SourceOf adapts a typed record iterator, such as Arena.Iter, into a Source.
func SourceOf[T any](name string, items func() iter.Seq2[ecs.EntityId, *T]) Source {
	return Source{
		Name: name,
		Items: func() iter.Seq2[ecs.EntityId, any] {
			return func(yield func(ecs.EntityId, any) bool) {
				for id, item := range items() {
					if !yield(id, item) {
						return
					}
				}
			}
		},
	}
}

type EntityInfo struct {
	ID      ecs.EntityId
	Source  string
	Summary string
}

// EntityBrowser lists the records of its sources in a sortable, filterable
// table and tracks the selected entity.
type EntityBrowser struct {
	sources  []Source
	entities []EntityInfo
	selected ecs.EntityId

	filterText         string
	maxEntitiesPerPage int
	currentPage        int
	sortColumn         int
	sortAscending      bool
}

func NewEntityBrowser(maxEntitiesPerPage int, sources ...Source) *EntityBrowser {
	return &EntityBrowser{
		sources:            sources,
		maxEntitiesPerPage: maxEntitiesPerPage,
		sortAscending:      true,
	}
}

// Refresh rebuilds the entity list from the sources.
func (eb *EntityBrowser) Refresh() {
	eb.entities = eb.entities[:0]
	for _, src := range eb.sources {
		for id, item := range src.Items() {
			eb.entities = append(eb.entities, EntityInfo{
				ID:      id,
				Source:  src.Name,
				Summary: summarize(item),
			})
		}
	}
	eb.sortEntities()
}

func summarize(item any) string {
	return strings.TrimPrefix(fmt.Sprintf("%+v", item), "&")
}

// SetFilter keeps only entities whose id, source or summary contains text,
// ignoring case.
func (eb *EntityBrowser) SetFilter(text string) {
	eb.filterText = text
	eb.currentPage = 0
}

// SortBy orders the list by column: 0 id, 1 source, 2 summary.
func (eb *EntityBrowser) SortBy(column int, ascending bool) {
	eb.sortColumn = column
	eb.sortAscending = ascending
	eb.sortEntities()
}

func (eb *EntityBrowser) sortEntities() {
	sort.SliceStable(eb.entities, func(i, j int) bool {
		a, b := eb.entities[i], eb.entities[j]
		var less bool

		switch eb.sortColumn {
		case 1:
			less = a.Source < b.Source
		case 2:
			less = a.Summary < b.Summary
		default:
			less = a.ID < b.ID
		}

		if !eb.sortAscending {
			return !less
		}
		return less
	})
}

// Filtered returns the entities that pass the current filter.
func (eb *EntityBrowser) Filtered() []EntityInfo {
	if eb.filterText == "" {
		return eb.entities
	}

	filtered := make([]EntityInfo, 0, len(eb.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, entity := range eb.entities {
		idStr := fmt.Sprintf("%#x", uint64(entity.ID))
		if !strings.Contains(idStr, filterLower) &&
			!strings.Contains(strings.ToLower(entity.Source), filterLower) &&
			!strings.Contains(strings.ToLower(entity.Summary), filterLower) {
			continue
		}
		filtered = append(filtered, entity)
	}
	return filtered
}

func (eb *EntityBrowser) Select(id ecs.EntityId) {
	eb.selected = id
}

// Selected returns the selected id and its live record. The record is nil
// when nothing is selected or the entity has been despawned.
func (eb *EntityBrowser) Selected() (ecs.EntityId, any) {
	if !eb.selected.Valid() {
		return eb.selected, nil
	}
	for _, src := range eb.sources {
		for id, item := range src.Items() {
			if id == eb.selected {
				return id, item
			}
		}
	}
	return eb.selected, nil
}

func (eb *EntityBrowser) Render() {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.Refresh()

	filter := eb.filterText
	imgui.InputTextWithHint("##search", "Search...", &filter, imgui.InputTextFlagsNone, nil)
	if filter != eb.filterText {
		eb.SetFilter(filter)
	}
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.SetFilter("")
	}

	filtered := eb.Filtered()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Source")
		imgui.TableSetupColumn("Record")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.SortBy(int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx := min(eb.currentPage*eb.maxEntitiesPerPage, len(filtered))
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filtered))

		for _, entity := range filtered[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selected == entity.ID
			label := fmt.Sprintf("%d:%d", entity.ID.Kind(), entity.ID.Index())
			if imgui.SelectableBoolV(label, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.Select(entity.ID)
			}

			imgui.TableNextColumn()
			imgui.Text(entity.Source)

			imgui.TableNextColumn()
			imgui.Text(entity.Summary)
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

	imgui.End()
}
