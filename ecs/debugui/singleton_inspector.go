package debugui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/dashshot/ecs"
)

var durationType = reflect.TypeFor[time.Duration]()

// SingletonInspector renders every singleton in storage as a tree of
// editable fields. Edits are written straight through the singleton
// pointer.
type SingletonInspector struct {
	cache *ReflectionCache
}

func NewSingletonInspector() *SingletonInspector {
	return &SingletonInspector{cache: globalReflectionCache}
}

func (si *SingletonInspector) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Singleton Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	storage.EachSingleton(func(t reflect.Type, ptr any) {
		if imgui.TreeNodeStr(t.String()) {
			si.renderStruct(reflect.ValueOf(ptr).Elem(), t.String())
			imgui.TreePop()
		}
	})

	imgui.End()
}

func (si *SingletonInspector) renderStruct(val reflect.Value, path string) {
	if val.Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("%v", val.Interface()))
		return
	}

	for _, field := range si.cache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}

		id := path + "." + field.Name
		if field.Editable() {
			si.renderInput(field.Name, fieldVal, id)
		} else {
			si.renderValue(field.Name, fieldVal, id)
		}
	}
}

// renderInput draws an input widget for a field whose FieldInfo is
// Editable and writes any change back.
func (si *SingletonInspector) renderInput(name string, val reflect.Value, id string) {
	if val.Kind() == reflect.Bool {
		v := val.Bool()
		if imgui.Checkbox(name+"##"+id, &v) {
			setBool(val, v)
		}
		return
	}

	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.SetNextItemWidth(150)
		if imgui.InputInt("##"+id, &v) {
			setInt(val, int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.SetNextItemWidth(150)
		if imgui.InputInt("##"+id, &v) && v >= 0 {
			setUint(val, uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat("##"+id, &v) {
			setFloat(val, float64(v))
		}

	case reflect.String:
		v := val.String()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint("##"+id, "", &v, imgui.InputTextFlagsNone, nil) {
			setString(val, v)
		}
	}
}

func (si *SingletonInspector) renderValue(name string, val reflect.Value, id string) {
	switch {
	case val.Type() == durationType:
		imgui.Text(fmt.Sprintf("%s: %s", name, time.Duration(val.Int())))

	case val.Kind() == reflect.Struct:
		if imgui.TreeNodeStr(name + "##" + id) {
			si.renderStruct(val, id)
			imgui.TreePop()
		}

	case val.Kind() == reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case val.Kind() == reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case val.CanInterface():
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))

	default:
		imgui.Text(fmt.Sprintf("%s: <%s>", name, val.Kind()))
	}
}

func setInt(field reflect.Value, value int64) {
	if field.CanSet() && !field.OverflowInt(value) {
		field.SetInt(value)
	}
}

func setUint(field reflect.Value, value uint64) {
	if field.CanSet() && !field.OverflowUint(value) {
		field.SetUint(value)
	}
}

func setFloat(field reflect.Value, value float64) {
	if field.CanSet() {
		field.SetFloat(value)
	}
}

func setBool(field reflect.Value, value bool) {
	if field.CanSet() {
		field.SetBool(value)
	}
}

func setString(field reflect.Value, value string) {
	if field.CanSet() {
		field.SetString(value)
	}
}
