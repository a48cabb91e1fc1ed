package runtimestd

import (
	"github.com/Ottrlang/otterlang/internal/ffi"
	"github.com/Ottrlang/otterlang/internal/registry"
)

// entries lists every spec.md §4.7 canonical name this runtime provides,
// paired with the C symbol cmd/otterruntime exports for it (grounded
// one-for-one on original_source/src/runtime/stdlib/*.rs's
// register_std_*_symbols tables, task.rs's task.* rows, and the json/net/
// runtime rows this runtime supplements per SPEC_FULL.md).
var entries = []ffi.Function{
	{ExportName: "std.io.print", LinkerSymbol: "otter_std_io_print", Signature: ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Unit}},
	{ExportName: "std.io.println", LinkerSymbol: "otter_std_io_println", Signature: ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Unit}},
	{ExportName: "std.io.read_line", LinkerSymbol: "otter_std_io_read_line", Signature: ffi.Signature{Result: ffi.Str}},
	{ExportName: "std.io.free", LinkerSymbol: "otter_std_io_free_string", Signature: ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Unit}},

	{ExportName: "std.math.sqrt", LinkerSymbol: "otter_std_math_sqrt", Signature: ffi.Signature{Params: []ffi.Type{ffi.F64}, Result: ffi.F64}},
	{ExportName: "std.math.pow", LinkerSymbol: "otter_std_math_pow", Signature: ffi.Signature{Params: []ffi.Type{ffi.F64, ffi.F64}, Result: ffi.F64}},
	{ExportName: "std.math.sin", LinkerSymbol: "otter_std_math_sin", Signature: ffi.Signature{Params: []ffi.Type{ffi.F64}, Result: ffi.F64}},
	{ExportName: "std.math.cos", LinkerSymbol: "otter_std_math_cos", Signature: ffi.Signature{Params: []ffi.Type{ffi.F64}, Result: ffi.F64}},

	{ExportName: "time.now", LinkerSymbol: "otter_time_now", Signature: ffi.Signature{Result: ffi.Opaque}},
	{ExportName: "time.sleep", LinkerSymbol: "otter_time_sleep", Signature: ffi.Signature{Params: []ffi.Type{ffi.I64}, Result: ffi.Unit}},
	{ExportName: "time.since", LinkerSymbol: "otter_time_since", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.I64}},
	{ExportName: "time.format", LinkerSymbol: "otter_time_format", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque, ffi.Str}, Result: ffi.Str}},
	{ExportName: "time.parse", LinkerSymbol: "otter_time_parse", Signature: ffi.Signature{Params: []ffi.Type{ffi.Str, ffi.Str}, Result: ffi.Opaque}},
	{ExportName: "time.after", LinkerSymbol: "otter_time_after", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque, ffi.I64}, Result: ffi.Opaque}},

	{ExportName: "list.new", LinkerSymbol: "otter_list_new", Signature: ffi.Signature{Result: ffi.Opaque}},
	{ExportName: "list.get", LinkerSymbol: "otter_list_get", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque, ffi.I64}, Result: ffi.I64}},
	{ExportName: "map.new", LinkerSymbol: "otter_map_new", Signature: ffi.Signature{Result: ffi.Opaque}},
	{ExportName: "map.get", LinkerSymbol: "otter_map_get", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque, ffi.Str}, Result: ffi.I64}},
	{ExportName: "map.set", LinkerSymbol: "otter_map_set", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque, ffi.Str, ffi.I64}, Result: ffi.Unit}},
	{ExportName: "len", LinkerSymbol: "otter_len", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.I64}},
	{ExportName: "cap", LinkerSymbol: "otter_cap", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.I64}},
	{ExportName: "append<list>", LinkerSymbol: "otter_append_list", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque, ffi.I64}, Result: ffi.I64}},
	{ExportName: "delete<map>", LinkerSymbol: "otter_delete_map", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque, ffi.Str}, Result: ffi.Unit}},
	{ExportName: "range<int>", LinkerSymbol: "otter_range_int", Signature: ffi.Signature{Params: []ffi.Type{ffi.I64, ffi.I64}, Result: ffi.Opaque}},
	{ExportName: "range<float>", LinkerSymbol: "otter_range_float", Signature: ffi.Signature{Params: []ffi.Type{ffi.F64, ffi.F64}, Result: ffi.Opaque}},
	{ExportName: "enumerate<list>", LinkerSymbol: "otter_enumerate_list", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Opaque}},

	{ExportName: "panic", LinkerSymbol: "otter_panic", Signature: ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Unit}},
	{ExportName: "recover", LinkerSymbol: "otter_recover", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Str}},
	{ExportName: "try", LinkerSymbol: "otter_try", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Opaque}},
	{ExportName: "try.result", LinkerSymbol: "otter_try_result", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.I64}},
	{ExportName: "try.error", LinkerSymbol: "otter_try_error", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Opaque}},
	{ExportName: "error.message", LinkerSymbol: "otter_error_message", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Str}},
	{ExportName: "defer", LinkerSymbol: "otter_defer", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque, ffi.Opaque}, Result: ffi.Unit}},

	{ExportName: "type_of<value>", LinkerSymbol: "otter_type_of", Signature: ffi.Signature{Params: []ffi.Type{ffi.I64}, Result: ffi.Str}},
	{ExportName: "fields", LinkerSymbol: "otter_fields", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Opaque}},
	{ExportName: "stringify<value>", LinkerSymbol: "otter_stringify", Signature: ffi.Signature{Params: []ffi.Type{ffi.I64}, Result: ffi.Str}},

	{ExportName: "task.spawn", LinkerSymbol: "otter_task_spawn_fn", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Opaque}},
	{ExportName: "task.join", LinkerSymbol: "otter_task_join_fn", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Unit}},
	{ExportName: "task.detach", LinkerSymbol: "otter_task_detach", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Unit}},
	{ExportName: "task.sleep", LinkerSymbol: "otter_task_sleep", Signature: ffi.Signature{Params: []ffi.Type{ffi.I64}, Result: ffi.Unit}},
	{ExportName: "task.channel<string>", LinkerSymbol: "otter_task_channel_string", Signature: ffi.Signature{Result: ffi.Opaque}},
	{ExportName: "task.channel<int>", LinkerSymbol: "otter_task_channel_int", Signature: ffi.Signature{Result: ffi.Opaque}},
	{ExportName: "task.channel<float>", LinkerSymbol: "otter_task_channel_float", Signature: ffi.Signature{Result: ffi.Opaque}},
	{ExportName: "task.send<string>", LinkerSymbol: "otter_task_send_string", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque, ffi.Str}, Result: ffi.Bool}},
	{ExportName: "task.send<int>", LinkerSymbol: "otter_task_send_int", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque, ffi.I64}, Result: ffi.Bool}},
	{ExportName: "task.send<float>", LinkerSymbol: "otter_task_send_float", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque, ffi.F64}, Result: ffi.Bool}},
	{ExportName: "task.recv<string>", LinkerSymbol: "otter_task_recv_string", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Str}},
	{ExportName: "task.recv<int>", LinkerSymbol: "otter_task_recv_int", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.I64}},
	{ExportName: "task.recv<float>", LinkerSymbol: "otter_task_recv_float", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.F64}},
	{ExportName: "task.close", LinkerSymbol: "otter_task_close", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Unit}},

	{ExportName: "json.encode", LinkerSymbol: "otter_json_encode", Signature: ffi.Signature{Params: []ffi.Type{ffi.I64}, Result: ffi.Str}},
	{ExportName: "json.decode", LinkerSymbol: "otter_json_decode", Signature: ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.I64}},
	{ExportName: "json.pretty", LinkerSymbol: "otter_json_pretty", Signature: ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Str}},
	{ExportName: "json.validate", LinkerSymbol: "otter_json_validate", Signature: ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Bool}},

	{ExportName: "net.listen", LinkerSymbol: "otter_net_listen", Signature: ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Opaque}},
	{ExportName: "net.dial", LinkerSymbol: "otter_net_dial", Signature: ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Opaque}},
	{ExportName: "net.send", LinkerSymbol: "otter_net_send", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque, ffi.Str}, Result: ffi.Bool}},
	{ExportName: "net.recv", LinkerSymbol: "otter_net_recv", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Str}},
	{ExportName: "net.close", LinkerSymbol: "otter_net_close", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Unit}},
	{ExportName: "net.http_get", LinkerSymbol: "otter_net_http_get", Signature: ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Opaque}},
	{ExportName: "net.http_post", LinkerSymbol: "otter_net_http_post", Signature: ffi.Signature{Params: []ffi.Type{ffi.Str, ffi.Str}, Result: ffi.Opaque}},
	{ExportName: "net.response.status", LinkerSymbol: "otter_net_response_status", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.I64}},
	{ExportName: "net.response.body", LinkerSymbol: "otter_net_response_body", Signature: ffi.Signature{Params: []ffi.Type{ffi.Opaque}, Result: ffi.Str}},

	{ExportName: "runtime.gos", LinkerSymbol: "otter_runtime_gos", Signature: ffi.Signature{Result: ffi.I64}},
	{ExportName: "runtime.cpu_count", LinkerSymbol: "otter_runtime_cpu_count", Signature: ffi.Signature{Result: ffi.I64}},
	{ExportName: "runtime.memory", LinkerSymbol: "otter_runtime_memory", Signature: ffi.Signature{Result: ffi.I64}},
	{ExportName: "runtime.collect_garbage", LinkerSymbol: "otter_runtime_collect_garbage", Signature: ffi.Signature{Result: ffi.Unit}},
	{ExportName: "runtime.stats", LinkerSymbol: "otter_runtime_stats", Signature: ffi.Signature{Result: ffi.Str}},
	{ExportName: "runtime.version", LinkerSymbol: "otter_runtime_version", Signature: ffi.Signature{Result: ffi.Str}},
}

func registerEntries(r *registry.Registry) error {
	for _, fn := range entries {
		if err := r.Register(fn); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	registry.MustRegisterProvider(registerEntries)
}
