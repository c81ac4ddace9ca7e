// 包 mmapfile：数据集文件的两种加载方式——mmap（默认）与整体读入内存（"in-memory 模式"）。
// 背景：两种模式都只通过 Bytes() 返回的只读切片暴露内容；mmap 模式下操作系统按需缺页，
// in-memory 模式整体读入一次性付清。internal/loader 在加载阶段就把这些字节解码、复制进
// 自己的切片，查询路径不读取这里的映射区域，因此两种模式的差别只在加载阶段：解码后的
// 数据在两种模式下都常驻堆内存，mmap 模式并不会减小查询期间的常驻集。
package mmapfile

import (
	"os"

	"golang.org/x/sys/unix"

	"tzlookup/internal/engineerr"
)

// File 是对一个只读数据集文件的统一视图，底层要么是 mmap 区域，要么是拥有的字节切片。
type File struct {
	data   []byte
	mapped bool
}

// Open 按 inMemory 选择的模式打开 path。文件内容在两种模式下都不可写。
func Open(path string, inMemory bool) (*File, error) {
	if inMemory {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &engineerr.LoadFailureError{Path: path, Cause: err}
		}
		return &File{data: data}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &engineerr.LoadFailureError{Path: path, Cause: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &engineerr.LoadFailureError{Path: path, Cause: err}
	}
	if fi.Size() == 0 {
		return &File{data: nil}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &engineerr.LoadFailureError{Path: path, Cause: err}
	}
	return &File{data: data, mapped: true}, nil
}

// Bytes 返回文件内容的只读视图；调用方不得修改。
func (f *File) Bytes() []byte { return f.data }

// Close 释放底层资源。in-memory 模式下是 no-op，因为字节切片由 Go 运行时的 GC 管理。
func (f *File) Close() error {
	if f.mapped && f.data != nil {
		return unix.Munmap(f.data)
	}
	return nil
}
