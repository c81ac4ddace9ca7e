// 包 npy：对 §6 所列 NumPy 风格数组文件（xmin/xmax/ymin/ymax、zone_ids、zone_positions）的读取封装。
// 背景：这些数组都是定长、无压缩的扁平数组，npyio 负责解析 .npy 头部与 dtype，
// 这里只是按照调用方期望的 Go 类型做一层薄封装，统一把失败转换为 engineerr.LoadFailureError。
package npy

import (
	"os"

	"github.com/sbinet/npyio"

	"tzlookup/internal/engineerr"
)

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &engineerr.LoadFailureError{Path: path, Cause: err}
	}
	return f, nil
}

// ReadInt32 读取一个 i32 dtype 的一维数组（xmin.npy/xmax.npy/ymin.npy/ymax.npy）。
func ReadInt32(path string) ([]int32, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []int32
	if err := npyio.Read(f, &out); err != nil {
		return nil, &engineerr.LoadFailureError{Path: path, Cause: err}
	}
	return out, nil
}

// ReadUint32 读取一个 u32 dtype 的一维数组（zone_positions.npy）。
func ReadUint32(path string) ([]uint32, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []uint32
	if err := npyio.Read(f, &out); err != nil {
		return nil, &engineerr.LoadFailureError{Path: path, Cause: err}
	}
	return out, nil
}

// ReadUint16 读取一个 u16 dtype 的一维数组。
func ReadUint16(path string) ([]uint16, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []uint16
	if err := npyio.Read(f, &out); err != nil {
		return nil, &engineerr.LoadFailureError{Path: path, Cause: err}
	}
	return out, nil
}

// ReadUint8 读取一个 u8 dtype 的一维数组。
func ReadUint8(path string) ([]uint8, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []uint8
	if err := npyio.Read(f, &out); err != nil {
		return nil, &engineerr.LoadFailureError{Path: path, Cause: err}
	}
	return out, nil
}

// ReadZoneIDs 读取 zone_ids.npy，其 dtype 依据数据集版本为 u8 或 u16（§6），
// 统一向上转换为 uint32 供 polygonstore 使用。
func ReadZoneIDs(path string, widthBytes int) ([]uint32, error) {
	switch widthBytes {
	case 1:
		raw, err := ReadUint8(path)
		if err != nil {
			return nil, err
		}
		out := make([]uint32, len(raw))
		for i, v := range raw {
			out[i] = uint32(v)
		}
		return out, nil
	case 2:
		raw, err := ReadUint16(path)
		if err != nil {
			return nil, err
		}
		out := make([]uint32, len(raw))
		for i, v := range raw {
			out[i] = uint32(v)
		}
		return out, nil
	default:
		return nil, &engineerr.CorruptDataError{Component: "npy", Detail: "unsupported zone id width"}
	}
}
