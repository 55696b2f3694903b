package ttlv

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"reflect"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// field is one encodable struct field resolved from its
// `kmip:"TAG_NAME,opts"` tag. The only options this codec speaks are
// "required" and "skip".
type field struct {
	name     string
	idx      []int
	tag      Tag
	typ      Type
	required bool
	sliceof  bool
	skip     bool
	dynamic  bool
}

type structDesc struct {
	tag Tag

	fields []field
}

// primitive wire types by Go type
var typeBindings = map[reflect.Type]Type{
	typeOfInt32:    INTEGER,
	typeOfInt64:    LONG_INTEGER,
	typeOfEnum:     ENUMERATION,
	typeOfBool:     BOOLEAN,
	typeOfBytes:    BYTE_STRING,
	typeOfString:   TEXT_STRING,
	typeOfTime:     DATE_TIME,
	typeOfDuration: INTERVAL,
}

func resolveFieldType(ft reflect.Type, f *field) error {
	if typ, ok := typeBindings[ft]; ok {
		f.typ = typ
		return nil
	}

	switch ft.Kind() {
	case reflect.Struct:
		f.typ = STRUCTURE
	case reflect.Interface:
		// resolved at decode time via DynamicDispatch
		f.typ = STRUCTURE
		f.dynamic = true
	default:
		return errors.Errorf("unsupported type %s", ft.String())
	}

	return nil
}

func buildField(ff reflect.StructField, name, opts string) (f field, err error) {
	f = field{
		name: ff.Name,
		idx:  ff.Index,
	}

	var ok bool
	if f.tag, ok = tagMap[name]; !ok {
		err = errors.Errorf("unknown tag %v for field %v", name, ff.Name)
		return
	}

	for _, opt := range strings.Split(opts, ",") {
		switch opt {
		case "required":
			f.required = true
		case "skip":
			f.skip = true
		}
	}

	ft := ff.Type
	if ft.Kind() == reflect.Slice && ft != typeOfBytes {
		f.sliceof = true
		ft = ft.Elem()
	}

	if err = resolveFieldType(ft, &f); err != nil {
		err = errors.WithMessagef(err, "error processing field %v", ff.Name)
	}

	return
}

var descCache sync.Map // reflect.Type -> *structDesc

// getStructDesc resolves the field layout of tt, caching per type. The
// returned descriptor is a copy, callers are free to override its tag.
func getStructDesc(tt reflect.Type) (*structDesc, error) {
	if cached, ok := descCache.Load(tt); ok {
		sd := *cached.(*structDesc)
		return &sd, nil
	}

	res := &structDesc{}

	for i := 0; i < tt.NumField(); i++ {
		ff := tt.Field(i)

		name, opts, _ := strings.Cut(ff.Tag.Get("kmip"), ",")

		if ff.Type == typeOfTag {
			var ok bool
			if res.tag, ok = tagMap[name]; !ok {
				return nil, errors.Errorf("unknown tag %v for struct tag", name)
			}

			continue
		}

		if name == "" || ff.PkgPath != "" {
			continue
		}

		f, err := buildField(ff, name, opts)
		if err != nil {
			return nil, err
		}

		res.fields = append(res.fields, f)
	}

	descCache.Store(tt, res)

	sd := *res

	return &sd, nil
}
