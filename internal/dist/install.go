package dist

import (
	"fmt"
	"strings"

	"github.com/aerogrow/aerobuild/internal/device"
)

// InstallDoc renders the INSTALL.md content shipped with every package
func InstallDoc(v device.Variant) string {
	title := strings.ToUpper(v.String()[:1]) + v.String()[1:]

	return fmt.Sprintf(`# %s Device Installation

## Files Included
- `+"`firmware.bin`"+`: Main firmware binary
- `+"`partitions.csv`"+`: Partition table
- `+"`default_config.json`"+`: Default configuration template

## Installation Steps

### 1. Install esptool
`+"```bash"+`
pip install esptool
`+"```"+`

### 2. Erase flash (first installation only)
`+"```bash"+`
esptool.py --chip esp32s3 --port /dev/ttyUSB0 erase_flash
`+"```"+`

### 3. Flash partition table
`+"```bash"+`
esptool.py --chip esp32s3 --port /dev/ttyUSB0 write_flash 0x8000 partitions.csv
`+"```"+`

### 4. Flash firmware
`+"```bash"+`
esptool.py --chip esp32s3 --port /dev/ttyUSB0 write_flash 0x10000 firmware.bin
`+"```"+`

### 5. Monitor output
`+"```bash"+`
esptool.py --chip esp32s3 --port /dev/ttyUSB0 monitor
`+"```"+`

## Configuration
Device will create default configuration on first boot. Connect via serial at 115200 baud to monitor startup and configure WiFi settings.

## Support
Check serial output for diagnostic information and error messages.
`, title)
}
