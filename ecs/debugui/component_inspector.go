package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/snake/ecs"
)

// ComponentInspector shows the fields of a single record and lets numeric,
// boolean and string fields be edited in place.
type ComponentInspector struct{}

func NewComponentInspector() *ComponentInspector {
	return &ComponentInspector{}
}

// Render draws the record for id. item must be a pointer for edits to stick.
func (ci *ComponentInspector) Render(id ecs.EntityId, item any) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if !id.Valid() {
		imgui.Text("No entity selected")
		return
	}
	if item == nil {
		imgui.Text(fmt.Sprintf("Entity %d:%d is no longer live", id.Kind(), id.Index()))
		return
	}

	val := reflect.ValueOf(item)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}

	imgui.Text(fmt.Sprintf("Entity: %d:%d", id.Kind(), id.Index()))
	imgui.Text(fmt.Sprintf("Type: %s", val.Type()))
	imgui.Separator()

	ci.renderStruct(val, "")
}

func (ci *ComponentInspector) renderStruct(val reflect.Value, prefix string) {
	for _, field := range fieldCache.Fields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		ci.renderField(field.Name, prefix+field.Name, fieldVal)
	}
}

func (ci *ComponentInspector) renderField(name, id string, val reflect.Value) {
	label := "##" + id

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(toInt(val))
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			assign(val, int64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) {
			assign(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name+label, &v) {
			assign(val, v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(label, "", &v, imgui.InputTextFlagsNone, nil) {
			assign(val, v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			ci.renderStruct(val, id+".")
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

func toInt(val reflect.Value) int64 {
	if val.CanInt() {
		return val.Int()
	}
	return int64(val.Uint())
}

// assign stores value into field, converting between numeric kinds. It
// reports false when the field cannot be set or the value does not fit.
func assign(field reflect.Value, value any) bool {
	if !field.CanSet() {
		return false
	}

	switch v := value.(type) {
	case int64:
		switch {
		case field.CanInt():
			if field.OverflowInt(v) {
				return false
			}
			field.SetInt(v)
		case field.CanUint():
			if v < 0 || field.OverflowUint(uint64(v)) {
				return false
			}
			field.SetUint(uint64(v))
		default:
			return false
		}
	case float64:
		if !field.CanFloat() || field.OverflowFloat(v) {
			return false
		}
		field.SetFloat(v)
	case bool:
		if field.Kind() != reflect.Bool {
			return false
		}
		field.SetBool(v)
	case string:
		if field.Kind() != reflect.String {
			return false
		}
		field.SetString(v)
	default:
		return false
	}
	return true
}
