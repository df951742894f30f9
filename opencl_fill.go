//go:build opencl

package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

const auroraKernelSource = `__kernel void aurora_fill(
    const int width,
    const int height,
    __global uchar* pixels)
{
    int idx = get_global_id(0);
    if (idx >= width * height) {
        return;
    }
    int x = idx % width;
    int y = idx / width;
    float nx = (float)x / (float)width;
    float ny = (float)y / (float)height;

    float w1 = sin(nx * WAVE1_FX + ny * WAVE1_FY) * 0.5f + 0.5f;
    float w2 = sin(nx * WAVE2_FX - ny * WAVE2_FY) * 0.5f + 0.5f;
    float w3 = cos(nx * WAVE3_FX + ny * WAVE3_FY) * 0.5f + 0.5f;
    float intensity = (w1 * WAVE1_W + w2 * WAVE2_W + w3 * WAVE3_W) * (1.0f - ny * FALLOFF);

    float3 base;
    float mult;
    if (w1 > THRESHOLD) {
        base = (float3)(PURPLE_R, PURPLE_G, PURPLE_B);
        mult = PURPLE_M;
    } else if (w2 > THRESHOLD) {
        base = (float3)(CYAN_R, CYAN_G, CYAN_B);
        mult = CYAN_M;
    } else if (w3 > THRESHOLD) {
        base = (float3)(GREEN_R, GREEN_G, GREEN_B);
        mult = GREEN_M;
    } else {
        base = (float3)(PINK_R, PINK_G, PINK_B);
        mult = PINK_M;
    }

    int p = idx * 4;
    pixels[p] = (uchar)min((int)pixels[p] + (int)(base.x * intensity * mult), 255);
    pixels[p + 1] = (uchar)min((int)pixels[p + 1] + (int)(base.y * intensity * mult), 255);
    pixels[p + 2] = (uchar)min((int)pixels[p + 2] + (int)(base.z * intensity * mult), 255);
}`

// auroraKernelDefines passes the pattern constants to the kernel compiler so
// the device and CPU paths share one definition.
func auroraKernelDefines() string {
	var sb strings.Builder
	def := func(name string, v float64) {
		fmt.Fprintf(&sb, "-D %s=%.6ff ", name, v)
	}
	def("WAVE1_FX", wave1FreqX)
	def("WAVE1_FY", wave1FreqY)
	def("WAVE2_FX", wave2FreqX)
	def("WAVE2_FY", wave2FreqY)
	def("WAVE3_FX", wave3FreqX)
	def("WAVE3_FY", wave3FreqY)
	def("WAVE1_W", wave1Weight)
	def("WAVE2_W", wave2Weight)
	def("WAVE3_W", wave3Weight)
	def("FALLOFF", verticalFalloff)
	def("THRESHOLD", bandThreshold)
	for _, b := range []band{bandPurple, bandCyan, bandGreen, bandPink} {
		prefix := strings.ToUpper(b.String())
		st := bandStyles[b]
		def(prefix+"_R", st.r)
		def(prefix+"_G", st.g)
		def(prefix+"_B", st.b)
		def(prefix+"_M", st.multiplier)
	}
	return strings.TrimSpace(sb.String())
}

// selectDevice prefers the first GPU and falls back to the first CPU device.
func selectDevice() (*cl.Device, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	for _, kind := range []cl.DeviceType{cl.DeviceTypeGPU, cl.DeviceTypeCPU} {
		for _, p := range platforms {
			devices, derr := p.GetDevices(kind)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				return devices[0], nil
			}
		}
	}
	return nil, errors.New("no suitable OpenCL devices found")
}

// fillAuroraOpenCL runs the aurora pass on an OpenCL device. img is only
// modified once the device result has been read back completely.
func fillAuroraOpenCL(img *image.RGBA) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if img.Stride != width*4 {
		return fmt.Errorf("unexpected stride %d for width %d", img.Stride, width)
	}
	device, err := selectDevice()
	if err != nil {
		return err
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return fmt.Errorf("creating OpenCL context: %w", err)
	}
	defer context.Release()
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		return fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	defer queue.Release()
	program, err := context.CreateProgramWithSource([]string{auroraKernelSource})
	if err != nil {
		return fmt.Errorf("creating OpenCL program: %w", err)
	}
	defer program.Release()
	if err := program.BuildProgram([]*cl.Device{device}, auroraKernelDefines()); err != nil {
		if buildErr, ok := err.(cl.BuildError); ok {
			return fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("aurora_fill")
	if err != nil {
		return fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	defer kernel.Release()

	byteSize := len(img.Pix)
	pixelBuf, err := context.CreateEmptyBuffer(cl.MemReadWrite, byteSize)
	if err != nil {
		return fmt.Errorf("allocating pixel buffer: %w", err)
	}
	defer pixelBuf.Release()

	if _, err := queue.EnqueueWriteBuffer(pixelBuf, false, 0, byteSize, unsafe.Pointer(&img.Pix[0]), nil); err != nil {
		return fmt.Errorf("writing pixel buffer: %w", err)
	}
	if err := kernel.SetArgs(int32(width), int32(height), pixelBuf); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	if _, err := queue.EnqueueNDRangeKernel(kernel, nil, []int{width * height}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	out := make([]byte, byteSize)
	if _, err := queue.EnqueueReadBuffer(pixelBuf, true, 0, byteSize, unsafe.Pointer(&out[0]), nil); err != nil {
		return fmt.Errorf("reading pixel buffer: %w", err)
	}
	copy(img.Pix, out)
	log.Printf("OpenCL fill done (device: %s)", device.Name())
	return nil
}
