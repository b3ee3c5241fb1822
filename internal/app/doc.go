// Package app wires keyforge together: settings, logging, keymaps, the
// configuration script and the layout file written for the keyboard.
//
// A build runs these steps in order:
//
//  1. Load settings (file, environment, flags).
//  2. Create a builder for the configured platform.
//  3. Merge the configured presets, then the configured remap files.
//  4. Run the script against the builder.
//  5. Make the layout and serialize it.
//  6. Write <output_dir>/<layout_name>, or render to a writer.
//
// Each run gets a build ID that tags every log line of that run.
package app
